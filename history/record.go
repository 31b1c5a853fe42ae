package history

import (
	"fmt"
	"time"

	"github.com/tubegrab/tubegrab/video"
)

// Record is one opened download link.
type Record struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Quality  int       `json:"quality"`
	Selected string    `json:"selected"`
	URL      string    `json:"url"`
	SavedAt  time.Time `json:"saved_at"`
}

// NewRecord describes the variant picked for a video at the given threshold.
func NewRecord(id video.Reference, meta video.Metadata, quality video.Quality, chosen video.Variant) *Record {
	return &Record{
		ID:       id.String(),
		Title:    meta.DisplayTitle(),
		Author:   meta.DisplayAuthor(),
		Quality:  int(quality),
		Selected: chosen.Quality,
		URL:      chosen.URL,
		SavedAt:  time.Now(),
	}
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s)", r.Title, r.Selected)
}
