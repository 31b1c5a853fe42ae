package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/log"
	"github.com/tubegrab/tubegrab/query"
	"github.com/tubegrab/tubegrab/video"
)

type lookupDoneMsg struct {
	request int
	input   string
	result  downloader.Result
	err     error
}

type resolveDoneMsg struct {
	request int
	variant video.Variant
	err     error
}

// openError keeps the selected variant when the system refused to open it.
type openError struct {
	err error
}

func (e *openError) Error() string {
	return fmt.Sprintf("could not open the download link: %v", e.err)
}

func (e *openError) Unwrap() error {
	return e.err
}

// submit runs the primary action: download when the shown video matches the input, look up otherwise.
func (b *statefulBubble) submit() tea.Cmd {
	input := b.inputC.Value()
	if b.found.IsPresent() && input == b.lookedUp {
		return b.download()
	}
	return b.lookup(input)
}

func (b *statefulBubble) lookup(input string) tea.Cmd {
	if _, err := video.ExtractID(input); err != nil {
		return b.raiseError(err)
	}

	b.request++
	request := b.request
	svc := b.options.Service

	b.setState(loadingState)
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		result, err := svc.Lookup(context.Background(), input)
		return lookupDoneMsg{request: request, input: input, result: result, err: err}
	})
}

func (b *statefulBubble) download() tea.Cmd {
	b.request++
	request := b.request
	svc := b.options.Service
	input, quality, open := b.lookedUp, b.quality, b.options.Open

	b.setState(downloadingState)
	return tea.Batch(b.spinnerC.Tick, func() tea.Msg {
		variant, err := svc.Resolve(context.Background(), input, quality)
		if err == nil && open != nil {
			if openErr := open(variant.URL); openErr != nil {
				err = &openError{err: openErr}
			}
		}
		return resolveDoneMsg{request: request, variant: variant, err: err}
	})
}

// abandon stops waiting for the running call. The request itself keeps going.
func (b *statefulBubble) abandon() {
	b.request++
	b.setState(b.formState())
}

func (b *statefulBubble) onLookupDone(msg lookupDoneMsg) tea.Cmd {
	if msg.request != b.request || b.state != loadingState {
		return nil
	}

	if msg.err != nil {
		return b.raiseError(msg.err)
	}

	b.found = mo.Some(msg.result)
	b.lookedUp = msg.input
	b.opened = mo.None[video.Variant]()
	b.searchSuggestion = mo.None[string]()
	b.setState(successState)

	if err := query.Remember(strings.TrimSpace(msg.input), 1); err != nil {
		log.Debugf("remember query: %s", err)
	}
	return nil
}

func (b *statefulBubble) onResolveDone(msg resolveDoneMsg) tea.Cmd {
	if msg.request != b.request || b.state != downloadingState {
		return nil
	}

	if msg.err != nil {
		return b.raiseError(msg.err)
	}

	b.opened = mo.Some(msg.variant)
	b.setState(completedState)

	var noticeCmd tea.Cmd
	if b.options.SaveHistory {
		found := b.found.MustGet()
		record := history.NewRecord(found.ID, found.Metadata, b.quality, msg.variant)
		if err := history.Save(record); err != nil {
			log.Debugf("%s", err)
			noticeCmd = b.notice.Show("history not saved")
		}
	}

	return tea.Batch(noticeCmd, b.clearTimer.Arm(b.completedDelay))
}

// expire handles the clear timer running out.
func (b *statefulBubble) expire() {
	switch b.state {
	case errorState:
		b.clearError()
	case completedState:
		b.reset()
	}
}

func (b *statefulBubble) loadHistory() error {
	records, err := history.Get()
	if err != nil {
		return err
	}

	items := make([]list.Item, len(records))
	for i, r := range records {
		items[i] = &historyItem{record: r}
	}

	b.historyC.SetItems(items)
	return nil
}

func (b *statefulBubble) reopen(item *historyItem) tea.Cmd {
	if b.options.Open == nil {
		return b.notice.Show(item.record.URL)
	}

	if err := b.options.Open(item.record.URL); err != nil {
		log.Debugf("%s", err)
		return b.notice.Show("could not open link")
	}
	return b.notice.Show("opened " + item.record.Title)
}

func (b *statefulBubble) removeFromHistory(item *historyItem) tea.Cmd {
	if err := history.Remove(item.record.ID); err != nil {
		log.Debugf("%s", err)
		return b.notice.Show("could not remove entry")
	}

	b.historyC.RemoveItem(b.historyC.Index())
	return b.notice.Show("removed")
}
