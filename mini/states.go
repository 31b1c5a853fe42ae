package mini

import (
	"context"
	"fmt"
	"strings"

	"github.com/tubegrab/tubegrab/color"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/icon"
	"github.com/tubegrab/tubegrab/log"
	"github.com/tubegrab/tubegrab/query"
	"github.com/tubegrab/tubegrab/style"
	"github.com/tubegrab/tubegrab/video"
)

type state int

const (
	urlState state = iota + 1
	confirmState
	quitState
)

type lookup struct {
	input  string
	result downloader.Result
}

func (m *mini) handleURLState() error {
	input, err := m.prompt.URL(func(s string) []string {
		return query.SuggestMany(s)
	})
	if err != nil {
		return err
	}

	if _, err := video.ExtractID(input); err != nil {
		m.fail(err)
		return nil
	}

	m.progress("Fetching video info...")
	result, err := m.options.Service.Lookup(context.Background(), input)
	if err != nil {
		m.fail(err)
		return nil
	}

	if err := query.Remember(strings.TrimSpace(input), 1); err != nil {
		log.Debugf("remember query: %s", err)
	}

	m.found = &lookup{input: input, result: result}
	m.setState(confirmState)
	return nil
}

func (m *mini) handleConfirmState() error {
	meta := m.found.result.Metadata

	m.println(icon.Get(icon.Video) + " " + style.Bold(truncate(meta.DisplayTitle())))
	m.println(style.Faint(meta.DisplayAuthor()))

	quality, err := m.prompt.Quality(m.quality)
	if err != nil {
		return err
	}
	m.quality = quality

	yes, err := m.prompt.Confirm(fmt.Sprintf("Download MP4 (%s or better)?", quality.Label()))
	if err != nil {
		return err
	}

	if !yes {
		m.restart()
		return nil
	}

	m.progress("Generating link...")
	variant, err := m.options.Service.Resolve(context.Background(), m.found.input, quality)
	if err != nil {
		m.fail(err)
		m.restart()
		return nil
	}

	if m.options.Open != nil {
		if err := m.options.Open(variant.URL); err != nil {
			m.fail(fmt.Errorf("could not open the download link: %w", err))
			m.restart()
			return nil
		}
		m.println(icon.Get(icon.Success) + " Download link opened (" + variant.Quality + ")")
	} else {
		m.println(icon.Get(icon.Success) + " Download link ready (" + variant.Quality + ")")
	}
	m.println(icon.Get(icon.Link) + " " + variant.URL)

	if m.options.SaveHistory {
		if err := history.Save(history.NewRecord(m.found.result.ID, meta, quality, variant)); err != nil {
			log.Debugf("%s", err)
		}
	}

	m.restart()
	return nil
}

// restart forgets the current video and asks for the next URL.
func (m *mini) restart() {
	m.found = nil
	m.setState(urlState)
}

func (m *mini) fail(err error) {
	m.println(icon.Get(icon.Fail) + " " + style.Fg(color.Red)(err.Error()))
}

func (m *mini) progress(msg string) {
	m.println(style.Faint(icon.Get(icon.Progress) + " " + msg))
}

func (m *mini) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}

func truncate(s string) string {
	if len([]rune(s)) <= truncateAt {
		return s
	}
	return string([]rune(s)[:truncateAt-1]) + "…"
}
