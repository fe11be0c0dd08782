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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// Palette holds the styles used when rendering a tree.
type Palette struct {
	Balanced lipgloss.Style // nodes with balance 0
	Leaning  lipgloss.Style // nodes with balance -1 or +1
	Broken   lipgloss.Style // anything else, should never show up
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
}

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			// Dark background colors are typically 0-8, light are 15, 7, etc.
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	// Some terminals set TERM_THEME
	if theme := strings.ToLower(os.Getenv("TERM_THEME")); theme != "" {
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	if lipgloss.HasDarkBackground() {
		return TerminalModeDark
	}
	return TerminalModeLight
}

// newPalette picks darker colors for light terminals and brighter ones
// for dark terminals
func newPalette(mode TerminalMode) *Palette {
	if mode == TerminalModeLight {
		return &Palette{
			Balanced: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true), // Green
			Leaning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true), // Yellow
			Broken:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true), // Red
			Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),            // Blue
			Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		}
	}
	return &Palette{
		Balanced: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Bright Green
		Leaning:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // Bright Yellow
		Broken:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Bright Red
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),            // Bright Cyan
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// keyStyle chooses a style from the balance factor of a node
func (p *Palette) keyStyle(balance int) lipgloss.Style {
	switch balance {
	case 0:
		return p.Balanced
	case -1, 1:
		return p.Leaning
	default:
		return p.Broken
	}
}
