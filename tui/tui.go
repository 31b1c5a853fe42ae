// Package tui is the full-screen interface: paste a URL, pick a minimum quality, open the link.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/video"
)

// Options configure the interface.
type Options struct {
	Service downloader.Runner
	// Quality is preselected.
	Quality video.Quality
	// URL is placed in the input on start.
	URL string
	// Open hands the chosen link to the system. Nil leaves it on screen only.
	Open func(url string) error
	// SaveHistory records every opened link.
	SaveHistory bool
	// ShowHistory starts on the history list.
	ShowHistory bool
}

// Run blocks until the user quits.
func Run(options *Options) error {
	bubble := newBubble(options)

	if options.ShowHistory {
		if err := bubble.loadHistory(); err != nil {
			return err
		}
		bubble.newState(historyState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
