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

type ColorScheme struct {
	Primary   lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
	TextMuted lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeLight TerminalMode = iota + 1
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// Green and Reset wrap counts and names in plain fmt output. Set by
// InitializeColors.
var Green, Reset string

// detectTerminalMode guesses the background from COLORFGBG ("fg;bg") or a
// theme variable, and assumes dark otherwise.
func detectTerminalMode() TerminalMode {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		switch parts[len(parts)-1] {
		case "0", "8", "16":
			return TerminalModeDark
		case "7", "15", "255":
			return TerminalModeLight
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		}
		if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}
	return TerminalModeDark
}

func colorSchemeFor(mode TerminalMode) *ColorScheme {
	if mode == TerminalModeLight {
		return &ColorScheme{
			Primary:   lipgloss.Color("4"),
			Accent:    lipgloss.Color("5"),
			Error:     lipgloss.Color("1"),
			Border:    lipgloss.Color("8"),
			TextMuted: lipgloss.Color("240"),
		}
	}
	return &ColorScheme{
		Primary:   lipgloss.Color("6"),
		Accent:    lipgloss.Color("13"),
		Error:     lipgloss.Color("9"),
		Border:    lipgloss.Color("240"),
		TextMuted: lipgloss.Color("245"),
	}
}

// InitializeColors detects the terminal mode and picks the matching scheme.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	currentColorScheme = colorSchemeFor(detectedMode)
	Green, Reset = GetANSIColors()
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

func GetANSIColors() (success, reset string) {
	if detectedMode == TerminalModeLight {
		return "\033[32m", "\033[0m"
	}
	return "\033[92m", "\033[0m"
}

// StyleHeading renders report section titles.
func StyleHeading() lipgloss.Style {
	scheme := GetColorScheme()
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(scheme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(scheme.Border)
}

func StyleTextMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(GetColorScheme().TextMuted)
}

func StyleError() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(GetColorScheme().Error)
}

// StylePrompt colors the interactive shell prompt.
func StylePrompt() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(GetColorScheme().Accent)
}
