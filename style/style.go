// Package style provides a functional API for composing and applying lipgloss-based styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tubegrab/tubegrab/color"
)

// New returns an empty style used as a foundation for composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Truncate returns a rendering function that constrains the output to a maximum width.
func Truncate(max int) func(string) string {
	return func(s string) string { return New().Width(max).Render(s) }
}

var (
	Faint  = func(s string) string { return New().Faint(true).Render(s) }
	Bold   = func(s string) string { return New().Bold(true).Render(s) }
	Italic = func(s string) string { return New().Italic(true).Render(s) }
)

// Title renders a header banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.Violet).Padding(0, 1).Render(s)
}

// ErrorTitle renders a header banner in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Crimson).Padding(0, 1).Render(s)
}

// SuccessTitle renders a header banner in success colors.
var SuccessTitle = func(s string) string {
	return Colored(color.New("230"), color.Green).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a padded colored block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}
