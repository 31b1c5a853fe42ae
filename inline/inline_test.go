package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/video"
)

type stubService struct {
	variants []video.Variant
}

func (s *stubService) Lookup(_ context.Context, rawURL string) (downloader.Result, error) {
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return downloader.Result{}, err
	}
	return downloader.Result{ID: id, Metadata: video.Metadata{Title: mo.Some("Song"), Thumbnail: mo.Some("https://img.test/t.jpg")}}, nil
}

func (s *stubService) Resolve(_ context.Context, _ string, q video.Quality) (video.Variant, error) {
	return video.Select(s.variants, q)
}

var variants = []video.Variant{
	{Extension: "mp4", HasAudio: true, Quality: "480", URL: "https://cdn.test/480"},
	{Extension: "mp4", HasAudio: true, Quality: "720", URL: "https://cdn.test/720"},
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		ctx := context.Background()
		var buf bytes.Buffer
		opts := &Options{
			Out:     &buf,
			Service: &stubService{variants: variants},
			Quality: video.Q720,
		}

		Convey("prints the selected link", func() {
			opts.URLs = []string{"https://youtu.be/dQw4w9WgXcQ"}
			So(Run(ctx, opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "https://cdn.test/720\n")
		})

		Convey("prints metadata only", func() {
			opts.URLs = []string{"dQw4w9WgXcQ"}
			opts.InfoOnly = true
			So(Run(ctx, opts), ShouldBeNil)
			So(buf.String(), ShouldEqual, "dQw4w9WgXcQ\tSong\t"+video.PlaceholderAuthor+"\n")
		})

		Convey("stops at the first failure in plain mode", func() {
			opts.URLs = []string{"", "https://youtu.be/dQw4w9WgXcQ"}
			err := Run(ctx, opts)
			So(errors.Is(err, video.ErrInvalidInput), ShouldBeTrue)
			So(buf.String(), ShouldBeEmpty)
		})

		Convey("reports failures per entry in JSON mode", func() {
			opts.Json = true
			opts.URLs = []string{"not a url", "https://youtu.be/dQw4w9WgXcQ"}
			So(Run(ctx, opts), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Quality, ShouldEqual, 720)
			So(output.Result, ShouldHaveLength, 2)
			So(output.Result[0].Error.Kind, ShouldEqual, "unrecognized_url")
			So(output.Result[1].Variant.URL, ShouldEqual, "https://cdn.test/720")
			So(output.Result[1].Thumbnail, ShouldEqual, "https://img.test/t.jpg")
		})

		Convey("opens and reports selections", func() {
			var opened []string
			var selected []video.Quality
			opts.URLs = []string{"https://youtu.be/dQw4w9WgXcQ"}
			opts.Quality = video.Q2160
			opts.Open = mo.Some[Opener](func(url string) error {
				opened = append(opened, url)
				return nil
			})
			opts.OnSelected = func(_ video.Reference, _ video.Metadata, q video.Quality, _ video.Variant) {
				selected = append(selected, q)
			}

			So(Run(ctx, opts), ShouldBeNil)
			So(opened, ShouldResemble, []string{"https://cdn.test/720"})
			So(selected, ShouldResemble, []video.Quality{video.Q2160})
		})
	})
}

func TestWriteJson(t *testing.T) {
	Convey("writeJson produces a valid document for no entries", t, func() {
		var buf bytes.Buffer
		So(writeJson(&buf, nil, &Options{Quality: video.Q1080}), ShouldBeNil)

		var output Output
		So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
		So(output.Quality, ShouldEqual, 1080)
		So(output.Result, ShouldHaveLength, 0)
	})
}
