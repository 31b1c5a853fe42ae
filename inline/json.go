package inline

import (
	"encoding/json"

	"github.com/tubegrab/tubegrab/video"
)

// Failure describes why an input produced no link.
type Failure struct {
	// Kind is one of invalid_input, unrecognized_url, upstream, no_eligible_variant, no_download_url, unknown.
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Entry struct {
	Input     string         `json:"input"`
	ID        string         `json:"id,omitempty"`
	Title     string         `json:"title,omitempty"`
	Author    string         `json:"author,omitempty"`
	Thumbnail string         `json:"thumbnail,omitempty"`
	Variant   *video.Variant `json:"variant,omitempty"`
	Opened    bool           `json:"opened,omitempty"`
	Error     *Failure       `json:"error,omitempty"`
}

type Output struct {
	Quality int      `json:"quality"`
	Result  []*Entry `json:"result"`
}

func newFailure(err error) *Failure {
	return &Failure{
		Kind:    video.Kind(err).String(),
		Message: err.Error(),
	}
}

func asJson(entries []*Entry, quality video.Quality) ([]byte, error) {
	if entries == nil {
		entries = []*Entry{}
	}

	return json.Marshal(&Output{
		Quality: int(quality),
		Result:  entries,
	})
}
