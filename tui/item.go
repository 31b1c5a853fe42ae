package tui

import (
	"fmt"

	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/video"
)

// historyItem shows a history record in the list.
type historyItem struct {
	record *history.Record
}

func (t *historyItem) Title() string {
	return t.record.Title
}

func (t *historyItem) Description() string {
	return fmt.Sprintf("%s · %s · asked %s · %s",
		t.record.Author,
		t.record.Selected,
		video.Quality(t.record.Quality).Label(),
		t.record.SavedAt.Format("2006-01-02 15:04"),
	)
}

func (t *historyItem) FilterValue() string {
	return t.record.Title
}
