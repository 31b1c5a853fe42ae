// Package video holds the data model shared by every front end: the id extracted
// from a user URL, the metadata shown after a lookup and the downloadable variants.
package video

import "github.com/samber/mo"

const (
	// PlaceholderTitle is shown when the upstream omits the title.
	PlaceholderTitle = "Video found"
	// PlaceholderAuthor is shown when the upstream omits the author.
	PlaceholderAuthor = "Unknown author"
)

// Reference is a video id such as "dQw4w9WgXcQ".
type Reference string

func (r Reference) String() string {
	return string(r)
}

// Metadata describes a video. Any field may be absent.
type Metadata struct {
	Title     mo.Option[string]
	Author    mo.Option[string]
	Thumbnail mo.Option[string]
}

// DisplayTitle returns the title or a placeholder.
func (m Metadata) DisplayTitle() string {
	return nonEmpty(m.Title).OrElse(PlaceholderTitle)
}

// DisplayAuthor returns the author or a placeholder.
func (m Metadata) DisplayAuthor() string {
	return nonEmpty(m.Author).OrElse(PlaceholderAuthor)
}

func nonEmpty(o mo.Option[string]) mo.Option[string] {
	if v, ok := o.Get(); ok && v != "" {
		return o
	}
	return mo.None[string]()
}

// Variant is one downloadable encoding of a video.
type Variant struct {
	Extension string `json:"extension"`
	HasAudio  bool   `json:"hasAudio"`
	// Quality is numeric but encoded as a string, e.g. "720" or "720p".
	Quality string `json:"quality"`
	URL     string `json:"url"`
}
