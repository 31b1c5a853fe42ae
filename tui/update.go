package tui

import (
	"strings"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/internal/ui"
	"github.com/tubegrab/tubegrab/query"
	"github.com/tubegrab/tubegrab/video"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	b.notice.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case ui.ExpiredMsg:
		if b.clearTimer.Fired(msg) {
			b.expire()
		}
		return b, nil
	case lookupDoneMsg:
		return b, b.onLookupDone(msg)
	case resolveDoneMsg:
		return b, b.onResolveDone(msg)
	case spinner.TickMsg:
		if !b.state.busy() {
			return b, nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		// The form is disabled while waiting for the API.
		if b.state.busy() {
			if bubblesKey.Matches(msg, b.keymap.abandon) {
				b.abandon()
			}
			return b, nil
		}
	}

	switch b.state {
	case idleState, successState:
		return b.updateForm(msg)
	case errorState, completedState:
		return b.updateTransient(msg)
	case historyState:
		return b.updateHistory(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.lookup):
			return b, b.submit()
		case bubblesKey.Matches(msg, b.keymap.higherQuality):
			b.shiftQuality(1)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.lowerQuality):
			b.shiftQuality(-1)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion):
			if suggestion, ok := b.searchSuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
				b.searchSuggestion = mo.None[string]()
				b.onInputChanged()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.reset):
			b.reset()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.showHistory):
			if err := b.loadHistory(); err != nil {
				return b, b.raiseError(err)
			}
			b.newState(historyState)
			return b, nil
		}
	}

	var cmd tea.Cmd
	before := b.inputC.Value()
	b.inputC, cmd = b.inputC.Update(msg)
	if b.inputC.Value() != before {
		b.onInputChanged()
	}

	return b, cmd
}

// onInputChanged refreshes the suggestion and forgets a video that no longer matches the input.
func (b *statefulBubble) onInputChanged() {
	value := b.inputC.Value()

	if b.found.IsPresent() && value != b.lookedUp {
		b.found = mo.None[downloader.Result]()
		b.lookedUp = ""
		b.setState(idleState)
	}

	if strings.TrimSpace(value) == "" {
		b.searchSuggestion = mo.None[string]()
		return
	}
	b.searchSuggestion = query.Suggest(value)
}

func (b *statefulBubble) shiftQuality(delta int) {
	idx := 0
	for i, q := range video.Qualities {
		if q == b.quality {
			idx = i
		}
	}

	idx += delta
	if idx < 0 || idx >= len(video.Qualities) {
		return
	}
	b.quality = video.Qualities[idx]
}

// updateTransient handles errors and the completed message. Any key ends them early
// and is then handled by the form.
func (b *statefulBubble) updateTransient(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	dismissOnly := bubblesKey.Matches(keyMsg, b.keymap.dismiss)
	b.expire()

	if dismissOnly {
		return b, nil
	}
	return b.updateForm(keyMsg)
}

func (b *statefulBubble) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.openURL):
			if item, ok := b.historyC.SelectedItem().(*historyItem); ok {
				return b, b.reopen(item)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.remove):
			if item, ok := b.historyC.SelectedItem().(*historyItem); ok {
				return b, b.removeFromHistory(item)
			}
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.historyC, cmd = b.historyC.Update(msg)
	return b, cmd
}
