// Package mini is the line-oriented front end for terminals where a full-screen interface is unwanted.
package mini

import (
	"errors"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/util"
	"github.com/tubegrab/tubegrab/video"
)

var truncateAt = 100

// Options configure a session.
type Options struct {
	Service     downloader.Runner
	Quality     video.Quality
	Open        func(url string) error
	SaveHistory bool
}

type mini struct {
	state state

	options *Options
	prompt  prompter
	out     io.Writer

	input   string
	found   *lookup
	quality video.Quality
}

func newMini(options *Options, p prompter, out io.Writer) *mini {
	quality := options.Quality
	if !quality.Valid() {
		quality = video.DefaultQuality
	}

	return &mini{
		state:   urlState,
		options: options,
		prompt:  p,
		out:     out,
		quality: quality,
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

// Run prompts until the user quits.
func Run(options *Options) error {
	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	return newMini(options, surveyPrompter{}, os.Stdout).run()
}

func (m *mini) run() error {
	for m.state != quitState {
		if err := m.handleState(); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case urlState:
		return m.handleURLState()
	case confirmState:
		return m.handleConfirmState()
	}
	return nil
}
