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
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/avlkit/avl"
)

const configFileName = ".avlkit.yaml"

type TreeConfig struct {
	Indent   int `yaml:"indent"`
	Capacity int `yaml:"capacity"` // 0 means unbounded
}

type DemoConfig struct {
	Count int `yaml:"count"`
}

type OutputConfig struct {
	Color bool `yaml:"color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Tree   TreeConfig   `yaml:"tree"`
	Demo   DemoConfig   `yaml:"demo"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		Indent:   avl.DefaultIndent,
		Capacity: 0,
	},
	Demo: DemoConfig{
		Count: 15,
	},
	Output: OutputConfig{
		Color: true,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// getConfigPath returns path when set, otherwise ~/.avlkit.yaml
func getConfigPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads the YAML configuration. A missing file yields the
// defaults. A broken file also yields the defaults, together with the
// error so the caller can warn about it.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig

	configPath, err := getConfigPath(path)
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, errors.Wrapf(err, "read %s", configPath)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "parse %s", configPath)
	}
	if err := config.validate(); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "invalid %s", configPath)
	}

	return &config, nil
}

func (c *Config) validate() error {
	if c.Tree.Indent < 0 {
		return errors.Errorf("tree.indent must not be negative: %d", c.Tree.Indent)
	}
	if c.Tree.Capacity < 0 {
		return errors.Errorf("tree.capacity must not be negative: %d", c.Tree.Capacity)
	}
	if c.Demo.Count < 0 {
		return errors.Errorf("demo.count must not be negative: %d", c.Demo.Count)
	}
	if _, err := parseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// treeOptions maps the tree section onto avl options
func (c *Config) treeOptions() []avl.Option {
	return []avl.Option{
		avl.WithIndent(c.Tree.Indent),
		avl.WithCapacity(c.Tree.Capacity),
	}
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "log.level %q", s)
	}
	return level, nil
}

func createDefaultConfigFile(path string) error {
	configPath, err := getConfigPath(path)
	if err != nil {
		return fmt.Errorf("failed to get config path: %v", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer, path string) {
	configPath, err := getConfigPath(path)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 avlkit Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	capacity := "unbounded"
	if config.Tree.Capacity > 0 {
		capacity = fmt.Sprintf("%d nodes", config.Tree.Capacity)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	fmt.Fprintf(w, "  • tree.indent: %d\n", config.Tree.Indent)
	fmt.Fprintf(w, "  • tree.capacity: %s\n", capacity)
	fmt.Fprintf(w, "  • demo.count: %d\n", config.Demo.Count)
	fmt.Fprintf(w, "  • output.color: %t\n", config.Output.Color)
	fmt.Fprintf(w, "  • log.level: %s\n", config.Log.Level)
}
