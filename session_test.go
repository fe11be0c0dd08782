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
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() *Config {
	config := defaultConfig
	config.Output.Color = false
	return &config
}

func newTestSession(t *testing.T, config *Config) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(config, &out, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, &out
}

func TestSessionScript(t *testing.T) {
	s, out := newTestSession(t, plainConfig())

	script := `
# build a small tree
insert 10 ten
insert 20 "twenty two"
insert 30
insert 20 twenty
lookup 20
lookup 99
delete 10
delete 10
keys
check
`
	require.NoError(t, s.RunScript(strings.NewReader(script), ScriptOptions{StopOnError: true}))

	expected := strings.Join([]string{
		"inserted 10",
		"inserted 20",
		"inserted 30",
		"updated 20",
		"20 => twenty",
		"99 not found",
		"deleted 10 => ten",
		"10 not found",
		"20 30",
		"ok: 2 keys, height 2",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestSessionPrint(t *testing.T) {
	s, out := newTestSession(t, plainConfig())
	for _, line := range []string{"insert 0", "insert 1", "insert 2"} {
		require.NoError(t, s.Exec(line))
	}
	out.Reset()

	require.NoError(t, s.Exec("print"))
	assert.Equal(t, "   1\n        0\n        2\n", out.String())

	// unchanged tree is served from the render cache
	cached, ok := GetRender(s.renders, s.generation)
	require.True(t, ok)
	assert.Equal(t, out.String(), cached)

	require.NoError(t, s.Exec("delete 0"))
	out.Reset()
	require.NoError(t, s.Exec("print"))
	assert.Equal(t, "   1\n        2\n", out.String())
}

func TestSessionErrors(t *testing.T) {
	s, _ := newTestSession(t, plainConfig())

	assert.ErrorIs(t, s.Exec("frobnicate 1"), ErrUnknownCommand)
	assert.ErrorIs(t, s.Exec("insert"), ErrUsage)
	assert.ErrorIs(t, s.Exec("insert abc"), ErrUsage)
	assert.ErrorIs(t, s.Exec("print now"), ErrUsage)
	assert.Error(t, s.Exec(`insert 1 "unterminated`))
}

func TestRunScriptStopsOnError(t *testing.T) {
	s, out := newTestSession(t, plainConfig())

	err := s.RunScript(strings.NewReader("insert 1\nbogus\ninsert 2\n"), ScriptOptions{StopOnError: true})
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")
	assert.Equal(t, "inserted 1\n", out.String())
}

func TestRunScriptContinues(t *testing.T) {
	s, out := newTestSession(t, plainConfig())

	err := s.RunScript(strings.NewReader("insert 1\nbogus\ninsert 2\n"), ScriptOptions{Prompt: "> "})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "error: line 2")
	assert.Equal(t, []int{1, 2}, s.tree.Keys())
	assert.True(t, strings.HasPrefix(out.String(), "> inserted 1"))
}

func TestSessionCapacity(t *testing.T) {
	config := plainConfig()
	config.Tree.Capacity = 2
	s, _ := newTestSession(t, config)

	require.NoError(t, s.Exec("insert 1"))
	require.NoError(t, s.Exec("insert 2"))
	err := s.Exec("insert 3")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "allocation")
}

func TestSessionClear(t *testing.T) {
	s, out := newTestSession(t, plainConfig())
	require.NoError(t, s.Exec("insert 5 five"))
	require.NoError(t, s.Exec("clear"))
	out.Reset()

	require.NoError(t, s.Exec("lookup 5"))
	assert.Equal(t, "5 not found\n", out.String())
	require.NoError(t, s.Exec("stats"))
	assert.Contains(t, out.String(), "keys=0 height=0 live=0 free=1 allocated=1")
}

func TestSessionCopy(t *testing.T) {
	s, _ := newTestSession(t, plainConfig())
	var copied string
	s.clipboard = func(text string) error {
		copied = text
		return nil
	}

	require.NoError(t, s.Exec("insert 1"))
	require.NoError(t, s.Exec("insert 2"))
	require.NoError(t, s.Exec("copy"))
	assert.Equal(t, "   1\n        2\n", copied)
}

func TestSessionColorPrint(t *testing.T) {
	config := defaultConfig
	s, out := newTestSession(t, &config)
	require.NoError(t, s.Exec("insert 7 seven"))
	out.Reset()

	require.NoError(t, s.Exec("print"))
	assert.Contains(t, out.String(), "7")
	assert.Contains(t, out.String(), "h=1 bf=+0")
	assert.Contains(t, out.String(), "seven")
}
