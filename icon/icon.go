// Package icon renders UI symbols in the variant selected by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// Icon identifies a symbol of the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Video
	Download
	Link
	Quality
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "💀", nerd: "", plain: "x", squares: "🟥"},
	Success:  {emoji: "🎉", nerd: "", plain: "✓", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "~", squares: "🟦"},
	Video:    {emoji: "🎬", nerd: "", plain: ">", squares: "🟪"},
	Download: {emoji: "📥", nerd: "", plain: "v", squares: "🟫"},
	Link:     {emoji: "🔗", nerd: "", plain: "@", squares: "🟧"},
	Quality:  {emoji: "📺", nerd: "", plain: "#", squares: "🟨"},
}

// Get returns the rendered string for an Icon in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
