package mini

import (
	"bytes"
	"context"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/video"
)

func init() {
	filesystem.SetMemMapFs()
}

type scriptedPrompter struct {
	urls     []string
	quality  video.Quality
	confirms []bool
}

func (p *scriptedPrompter) URL(func(string) []string) (string, error) {
	if len(p.urls) == 0 {
		return "", terminal.InterruptErr
	}
	u := p.urls[0]
	p.urls = p.urls[1:]
	return u, nil
}

func (p *scriptedPrompter) Quality(video.Quality) (video.Quality, error) {
	return p.quality, nil
}

func (p *scriptedPrompter) Confirm(string) (bool, error) {
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

type stubService struct {
	resolved   []video.Quality
	resolveErr error
}

func (s *stubService) Lookup(_ context.Context, rawURL string) (downloader.Result, error) {
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return downloader.Result{}, err
	}
	return downloader.Result{ID: id, Metadata: video.Metadata{Author: mo.Some("Band")}}, nil
}

func (s *stubService) Resolve(_ context.Context, _ string, q video.Quality) (video.Variant, error) {
	s.resolved = append(s.resolved, q)
	if s.resolveErr != nil {
		return video.Variant{}, s.resolveErr
	}
	return video.Variant{Extension: "mp4", HasAudio: true, Quality: "1440p", URL: "https://cdn.test/1440"}, nil
}

func TestMini(t *testing.T) {
	Convey("Given a scripted session", t, func() {
		So(history.Clear(), ShouldBeNil)

		svc := &stubService{}
		var opened []string
		var out bytes.Buffer

		options := &Options{
			Service:     svc,
			Quality:     video.Q720,
			SaveHistory: true,
			Open: func(url string) error {
				opened = append(opened, url)
				return nil
			},
		}

		Convey("When the URL is bad and then good", func() {
			p := &scriptedPrompter{
				urls:     []string{"", "not a url", "https://youtu.be/dQw4w9WgXcQ"},
				quality:  video.Q1440,
				confirms: []bool{true},
			}

			err := newMini(options, p, &out).run()

			Convey("Then errors are printed and the link is opened", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, video.ErrInvalidInput.Error())
				So(out.String(), ShouldContainSubstring, video.ErrUnrecognizedURL.Error())
				So(out.String(), ShouldContainSubstring, video.PlaceholderTitle)
				So(out.String(), ShouldContainSubstring, "Band")
				So(svc.resolved, ShouldResemble, []video.Quality{video.Q1440})
				So(opened, ShouldResemble, []string{"https://cdn.test/1440"})

				records, err := history.Get()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
			})
		})

		Convey("When no variant can be selected", func() {
			svc.resolveErr = video.ErrNoEligibleVariant
			p := &scriptedPrompter{
				urls:     []string{"https://youtu.be/dQw4w9WgXcQ"},
				quality:  video.Q1080,
				confirms: []bool{true},
			}

			err := newMini(options, p, &out).run()

			Convey("Then the error is printed and the next URL is asked for", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, video.ErrNoEligibleVariant.Error())
				So(svc.resolved, ShouldResemble, []video.Quality{video.Q1080})
				So(p.urls, ShouldBeEmpty)
				So(p.confirms, ShouldBeEmpty)
				So(opened, ShouldBeEmpty)
			})
		})

		Convey("When the download is declined", func() {
			p := &scriptedPrompter{
				urls:     []string{"https://youtu.be/dQw4w9WgXcQ"},
				quality:  video.Q720,
				confirms: []bool{false},
			}

			So(newMini(options, p, &out).run(), ShouldBeNil)
			So(svc.resolved, ShouldBeEmpty)
			So(opened, ShouldBeEmpty)
		})
	})
}

func TestTruncate(t *testing.T) {
	Convey("truncate", t, func() {
		truncateAt = 5
		defer func() { truncateAt = 100 }()

		So(truncate("abc"), ShouldEqual, "abc")
		So(truncate("abcdefgh"), ShouldEqual, "abcd…")
	})
}
