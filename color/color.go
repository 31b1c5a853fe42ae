// Package color holds the ANSI colors shared by the CLI output and the TUI.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
)

var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

// Brand colors.
var (
	Crimson = New("#dc2626")
	Violet  = New("#9333ea")
	Indigo  = New("#4f46e5")
	Gray    = New("#808080")
)
