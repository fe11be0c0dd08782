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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/willf/bloom"

	"github.com/cybrota/avlkit/avl"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

const (
	// sizing for the negative lookup filter
	bloomExpectedKeys  = 1 << 16
	bloomFalsePositive = 0.01
)

// Session drives one tree from textual commands, as typed in the shell
// or read from a script.
type Session struct {
	tree    *avl.Tree[string]
	indent  int
	palette *Palette // nil renders plain text

	// keys ever inserted since the last clear; a miss means the key is
	// certainly absent and the tree is not searched
	seen *bloom.BloomFilter

	renders    *cache.Cache
	generation uint64 // bumped on every structural change

	out       io.Writer
	log       *slog.Logger
	clipboard func(string) error
}

// ScriptOptions controls RunScript.
type ScriptOptions struct {
	StopOnError bool
	Prompt      string // written before reading each line when set
}

func NewSession(cfg *Config, out io.Writer, logger *slog.Logger) (*Session, error) {
	tree, err := avl.New[string](cfg.treeOptions()...)
	if err != nil {
		return nil, errors.Wrap(err, "create tree")
	}

	var palette *Palette
	if cfg.Output.Color {
		palette = newPalette(detectTerminalMode())
	}

	return &Session{
		tree:      tree,
		indent:    cfg.Tree.Indent,
		palette:   palette,
		seen:      bloom.NewWithEstimates(bloomExpectedKeys, bloomFalsePositive),
		renders:   NewRenderCache(),
		out:       out,
		log:       logger,
		clipboard: clipboard.WriteAll,
	}, nil
}

// Close destroys the tree. The session must not be used afterwards.
func (s *Session) Close() error {
	s.renders.Flush()
	return s.tree.Destroy()
}

func bloomKey(key int) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(key))
	return b[:]
}

// RunScript executes one command per line. Blank lines and lines
// starting with # are skipped.
func (s *Session) RunScript(r io.Reader, opts ScriptOptions) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for {
		if opts.Prompt != "" {
			fmt.Fprint(s.out, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		lineNo++

		err := s.Exec(scanner.Text())
		if err == nil {
			continue
		}
		err = errors.Wrapf(err, "line %d", lineNo)
		if opts.StopOnError {
			return err
		}
		s.log.Warn("command failed", "error", err)
		fmt.Fprintln(s.out, s.errorText(err.Error()))
	}
	return errors.Wrap(scanner.Err(), "read commands")
}

func (s *Session) errorText(msg string) string {
	if s.palette == nil {
		return "error: " + msg
	}
	return s.palette.Error.Render("error: " + msg)
}

// Exec runs a single command line.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return errors.Wrap(err, "parse command")
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	s.log.Debug("exec", "command", cmd, "args", args)

	switch cmd {
	case "insert", "put":
		return s.insert(args)
	case "delete", "del":
		return s.delete(args)
	case "lookup", "get":
		return s.lookup(args)
	case "print":
		return s.print(args)
	case "keys":
		return s.keys(args)
	case "check":
		return s.check(args)
	case "stats":
		return s.stats(args)
	case "clear":
		return s.clear(args)
	case "copy":
		return s.copy(args)
	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", cmd)
	}
}

func parseKey(args []string, usage string) (int, error) {
	if len(args) == 0 {
		return 0, errors.Wrap(ErrUsage, usage)
	}
	key, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrapf(ErrUsage, "key %q is not an integer", args[0])
	}
	return key, nil
}

func noArgs(args []string, cmd string) error {
	if len(args) != 0 {
		return errors.Wrapf(ErrUsage, "%s takes no arguments", cmd)
	}
	return nil
}

func (s *Session) changed() {
	s.generation++
}

func (s *Session) insert(args []string) error {
	key, err := parseKey(args, "insert KEY [VALUE...]")
	if err != nil {
		return err
	}
	value := strings.Join(args[1:], " ")

	existed := s.tree.Contains(key)
	if err := s.tree.Insert(key, value); err != nil {
		return errors.Wrapf(err, "insert %d", key)
	}
	s.seen.Add(bloomKey(key))
	s.changed()

	if existed {
		s.log.Debug("updated", "key", key)
		fmt.Fprintf(s.out, "updated %d\n", key)
	} else {
		s.log.Debug("inserted", "key", key, "height", s.tree.Height())
		fmt.Fprintf(s.out, "inserted %d\n", key)
	}
	return nil
}

func (s *Session) delete(args []string) error {
	key, err := parseKey(args, "delete KEY")
	if err != nil {
		return err
	}
	value, ok := s.tree.Delete(key)
	if !ok {
		fmt.Fprintf(s.out, "%d not found\n", key)
		return nil
	}
	s.changed()
	if value == "" {
		fmt.Fprintf(s.out, "deleted %d\n", key)
	} else {
		fmt.Fprintf(s.out, "deleted %d => %s\n", key, value)
	}
	return nil
}

func (s *Session) lookup(args []string) error {
	key, err := parseKey(args, "lookup KEY")
	if err != nil {
		return err
	}
	if !s.seen.Test(bloomKey(key)) {
		s.log.Debug("filtered lookup", "key", key)
		fmt.Fprintf(s.out, "%d not found\n", key)
		return nil
	}
	value, ok := s.tree.Lookup(key)
	if !ok {
		fmt.Fprintf(s.out, "%d not found\n", key)
		return nil
	}
	fmt.Fprintf(s.out, "%d => %s\n", key, value)
	return nil
}

// render returns the current drawing, reusing the cached one while the
// tree is unchanged
func (s *Session) render() string {
	if text, ok := GetRender(s.renders, s.generation); ok {
		return text
	}
	text := renderTree(s.tree, s.indent, s.palette)
	CacheRender(s.renders, s.generation, text)
	return text
}

func (s *Session) print(args []string) error {
	if err := noArgs(args, "print"); err != nil {
		return err
	}
	fmt.Fprint(s.out, s.render())
	return nil
}

func (s *Session) keys(args []string) error {
	if err := noArgs(args, "keys"); err != nil {
		return err
	}
	keys := s.tree.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
	return nil
}

func (s *Session) check(args []string) error {
	if err := noArgs(args, "check"); err != nil {
		return err
	}
	if err := s.tree.Check(); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "ok: %d keys, height %d\n", s.tree.Len(), s.tree.Height())
	return nil
}

func (s *Session) stats(args []string) error {
	if err := noArgs(args, "stats"); err != nil {
		return err
	}
	st := s.tree.Stats()
	fmt.Fprintf(s.out, "keys=%d height=%d live=%d free=%d allocated=%d\n",
		s.tree.Len(), s.tree.Height(), st.Live, st.Free, st.Total)
	return nil
}

func (s *Session) clear(args []string) error {
	if err := noArgs(args, "clear"); err != nil {
		return err
	}
	if err := s.tree.Clear(); err != nil {
		return err
	}
	s.seen.ClearAll()
	s.renders.Flush()
	s.changed()
	fmt.Fprintln(s.out, "cleared")
	return nil
}

// copy puts the plain rendering on the system clipboard
func (s *Session) copy(args []string) error {
	if err := noArgs(args, "copy"); err != nil {
		return err
	}
	if err := s.clipboard(s.tree.Print()); err != nil {
		return errors.Wrap(err, "copy to clipboard")
	}
	fmt.Fprintln(s.out, "copied")
	return nil
}
