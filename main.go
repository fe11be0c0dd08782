// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cybrota/avlkit/avl"
)

const banner = `
 █████╗ ██╗   ██╗██╗     ██╗  ██╗██╗████████╗
██╔══██╗██║   ██║██║     ██║ ██╔╝██║╚══██╔══╝
███████║██║   ██║██║     █████╔╝ ██║   ██║
██╔══██║╚██╗ ██╔╝██║     ██╔═██╗ ██║   ██║
██║  ██║ ╚████╔╝ ███████╗██║  ██╗██║   ██║
╚═╝  ╚═╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝╚═╝   ╚═╝
Height-balanced binary search tree workbench [Version: %s]
`

// app carries what every command needs after flags are parsed
type app struct {
	configPath string
	config     *Config
	log        *slog.Logger
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// setup loads the configuration and builds the logger. A broken config
// file is reported and the defaults are used.
func (a *app) setup(logLevel string) {
	config, cfgErr := LoadConfig(a.configPath)
	a.config = config

	if logLevel == "" {
		logLevel = config.Log.Level
	}
	level, err := parseLogLevel(logLevel)
	a.log = newLogger(level)
	if err != nil {
		a.log.Warn("bad log level, using info", "error", err)
	}
	if cfgErr != nil {
		a.log.Warn("failed to load configuration, using default settings", "error", cfgErr)
	}
}

func (a *app) palette() *Palette {
	if !a.config.Output.Color {
		return nil
	}
	return newPalette(detectTerminalMode())
}

func main() {
	logo := fmt.Sprintf(banner, version)
	a := &app{}
	var logLevel string

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert keys in order and print the tree after each step",
		Long:  fmt.Sprintf("%s\n%s", logo, "Demo inserts 0..count-1 in ascending order, printing the tree after every insertion"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count := a.config.Demo.Count
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			final, err := runDemo(cmd.OutOrStdout(), a.config, count, a.palette())
			if err != nil {
				return err
			}
			if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
				if err := clipboard.WriteAll(final); err != nil {
					return errors.Wrap(err, "copy to clipboard")
				}
				a.log.Info("copied final tree to clipboard")
			}
			return nil
		},
	}
	cmdDemo.Flags().Int("count", 15, "number of keys to insert (defaults to demo.count)")
	cmdDemo.Flags().Bool("copy", false, "copy the final tree to the clipboard")

	var cmdRun = &cobra.Command{
		Use:   "run FILE",
		Short: "Execute a script of tree commands",
		Long:  fmt.Sprintf("%s\n%s", logo, "Run executes one session command per line and stops at the first error"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			s, err := NewSession(a.config, cmd.OutOrStdout(), a.log)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.RunScript(f, ScriptOptions{StopOnError: true})
		},
	}

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Read tree commands from standard input",
		Long:  fmt.Sprintf("%s\n%s", logo, "Shell keeps going after a failed command; see 'usage' for the command list"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := NewSession(a.config, cmd.OutOrStdout(), a.log)
			if err != nil {
				return err
			}
			defer s.Close()
			prompt, _ := cmd.Flags().GetString("prompt")
			return s.RunScript(cmd.InOrStdin(), ScriptOptions{Prompt: prompt})
		},
	}
	cmdShell.Flags().String("prompt", "avl> ", "prompt printed before each command")

	var cmdLoad = &cobra.Command{
		Use:   "load",
		Short: "Bulk insert keys and verify the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			order, _ := cmd.Flags().GetString("order")
			seed, _ := cmd.Flags().GetInt64("seed")
			fraction, _ := cmd.Flags().GetFloat64("delete")

			tree, err := avl.New[string](a.config.treeOptions()...)
			if err != nil {
				return err
			}
			defer tree.Destroy()

			report, err := bulkLoad(tree, LoadOptions{
				Count:          count,
				Order:          order,
				Seed:           seed,
				DeleteFraction: fraction,
				Progress:       cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log.Info("load finished",
				"inserted", report.Inserted,
				"deleted", report.Deleted,
				"keys", report.Len,
				"height", report.Height)
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d keys, height %d\n", report.Len, report.Height)
			return nil
		},
	}
	cmdLoad.Flags().Int("count", 100000, "number of keys to insert")
	cmdLoad.Flags().String("order", OrderRandom, "insertion order: asc, desc or random")
	cmdLoad.Flags().Int64("seed", 1, "seed for random order and deletions")
	cmdLoad.Flags().Float64("delete", 0, "fraction of keys to delete after loading")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating it when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "avlkit",
		Version:       version,
		Long:          logo,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setup(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	rootCmd.AddCommand(cmdDemo, cmdRun, cmdShell, cmdLoad, cmdUsage, cmdSettings, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		if a.log == nil {
			a.log = newLogger(slog.LevelInfo)
		}
		a.log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
