package inline

import (
	"io"

	"github.com/samber/mo"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/video"
)

// Opener hands a link to the system.
type Opener func(url string) error

type Options struct {
	Out     io.Writer
	Service downloader.Runner
	URLs    []string
	Quality video.Quality
	Json    bool
	// InfoOnly skips the variant request.
	InfoOnly bool
	Open     mo.Option[Opener]
	// OnSelected is called for every resolved link.
	OnSelected func(id video.Reference, meta video.Metadata, quality video.Quality, chosen video.Variant)
}
