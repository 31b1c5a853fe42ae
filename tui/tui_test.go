package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/downloader"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/history"
	"github.com/tubegrab/tubegrab/internal/ui"
	"github.com/tubegrab/tubegrab/video"
)

func init() {
	filesystem.SetMemMapFs()
}

const watchURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

type fakeService struct {
	lookupErr  error
	resolveErr error
	variant    video.Variant
	lookups    int
	resolved   []video.Quality
}

func (f *fakeService) Lookup(_ context.Context, rawURL string) (downloader.Result, error) {
	f.lookups++
	if f.lookupErr != nil {
		return downloader.Result{}, f.lookupErr
	}
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return downloader.Result{}, err
	}
	return downloader.Result{ID: id, Metadata: video.Metadata{Title: mo.Some("Song")}}, nil
}

func (f *fakeService) Resolve(_ context.Context, _ string, quality video.Quality) (video.Variant, error) {
	f.resolved = append(f.resolved, quality)
	return f.variant, f.resolveErr
}

// collect runs cmd and every command batched inside it.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if t, ok := m.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func press(b *statefulBubble, k tea.KeyMsg) tea.Cmd {
	_, cmd := b.Update(k)
	return cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestBubble(svc *fakeService, opened *[]string) *statefulBubble {
	b := newBubble(&Options{
		Service:     svc,
		Quality:     video.DefaultQuality,
		SaveHistory: true,
		Open: func(url string) error {
			*opened = append(*opened, url)
			return nil
		},
	})
	b.clearDelay = func(video.ErrorKind) time.Duration { return time.Millisecond }
	b.completedDelay = time.Millisecond
	b.resize(100, 40)
	return b
}

func TestInputErrors(t *testing.T) {
	Convey("Given the form", t, func() {
		svc := &fakeService{}
		var opened []string
		b := newTestBubble(svc, &opened)

		Convey("When submitting an empty URL", func() {
			cmd := press(b, enter)

			Convey("Then an input error is shown without calling the API", func() {
				So(b.state, ShouldEqual, errorState)
				So(b.lastError, ShouldEqual, video.ErrInvalidInput)
				So(svc.lookups, ShouldEqual, 0)
				So(b.View(), ShouldContainSubstring, video.ErrInvalidInput.Error())
			})

			Convey("Then it clears when the timer fires", func() {
				expired, ok := find[ui.ExpiredMsg](collect(cmd))
				So(ok, ShouldBeTrue)

				b.Update(expired)
				So(b.state, ShouldEqual, idleState)
				So(b.lastError, ShouldBeNil)
			})

			Convey("Then a stale timer does not clear a newer error", func() {
				stale, _ := find[ui.ExpiredMsg](collect(cmd))

				press(b, typed("x"))
				So(b.state, ShouldEqual, idleState)
				So(b.inputC.Value(), ShouldEqual, "x")

				fresh := press(b, enter)
				So(b.state, ShouldEqual, errorState)
				So(b.lastError, ShouldEqual, video.ErrUnrecognizedURL)

				b.Update(stale)
				So(b.state, ShouldEqual, errorState)

				current, _ := find[ui.ExpiredMsg](collect(fresh))
				b.Update(current)
				So(b.state, ShouldEqual, idleState)
			})

			Convey("Then esc dismisses it at once", func() {
				press(b, esc)
				So(b.state, ShouldEqual, idleState)
			})
		})
	})
}

func TestDownloadFlow(t *testing.T) {
	Convey("Given a valid URL", t, func() {
		So(history.Clear(), ShouldBeNil)

		svc := &fakeService{variant: video.Variant{Extension: "mp4", HasAudio: true, Quality: "1080p", URL: "https://cdn.test/1080"}}
		var opened []string
		b := newTestBubble(svc, &opened)
		b.inputC.SetValue(watchURL)

		Convey("When looking it up", func() {
			cmd := press(b, enter)
			So(b.state, ShouldEqual, loadingState)

			Convey("Then the form is disabled while loading", func() {
				press(b, typed("zzz"))
				press(b, up)
				So(b.inputC.Value(), ShouldEqual, watchURL)
				So(b.quality, ShouldEqual, video.Q720)
				So(b.inputC.Focused(), ShouldBeFalse)
			})

			done, ok := find[lookupDoneMsg](collect(cmd))
			So(ok, ShouldBeTrue)
			b.Update(done)

			Convey("Then the metadata is shown", func() {
				So(b.state, ShouldEqual, successState)
				So(b.found.IsPresent(), ShouldBeTrue)
				view := b.View()
				So(view, ShouldContainSubstring, "Song")
				So(view, ShouldContainSubstring, video.PlaceholderAuthor)
			})

			Convey("Then editing the URL forgets the video", func() {
				press(b, typed("x"))
				So(b.state, ShouldEqual, idleState)
				So(b.found.IsPresent(), ShouldBeFalse)
			})

			Convey("Then confirming downloads at the chosen quality", func() {
				press(b, up)
				So(b.quality, ShouldEqual, video.Q1080)

				cmd := press(b, enter)
				So(b.state, ShouldEqual, downloadingState)

				resolved, ok := find[resolveDoneMsg](collect(cmd))
				So(ok, ShouldBeTrue)
				So(svc.resolved, ShouldResemble, []video.Quality{video.Q1080})
				So(opened, ShouldResemble, []string{"https://cdn.test/1080"})

				cmd = func() tea.Cmd { _, c := b.Update(resolved); return c }()
				So(b.state, ShouldEqual, completedState)
				So(b.View(), ShouldContainSubstring, "Download link opened")

				records, err := history.Get()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(records[0].Title, ShouldEqual, "Song")
				So(records[0].Quality, ShouldEqual, 1080)

				Convey("And the form resets after a moment", func() {
					expired, ok := find[ui.ExpiredMsg](collect(cmd))
					So(ok, ShouldBeTrue)
					b.Update(expired)

					So(b.state, ShouldEqual, idleState)
					So(b.inputC.Value(), ShouldEqual, "")
					So(b.found.IsPresent(), ShouldBeFalse)
				})
			})

			Convey("Then a selection error keeps the video", func() {
				svc.resolveErr = video.ErrNoEligibleVariant
				var kinds []video.ErrorKind
				b.clearDelay = func(k video.ErrorKind) time.Duration {
					kinds = append(kinds, k)
					return time.Millisecond
				}

				cmd := press(b, enter)
				resolved, _ := find[resolveDoneMsg](collect(cmd))
				cmd = func() tea.Cmd { _, c := b.Update(resolved); return c }()

				So(b.state, ShouldEqual, errorState)
				So(kinds, ShouldResemble, []video.ErrorKind{video.KindNoEligibleVariant})
				So(opened, ShouldBeEmpty)

				expired, _ := find[ui.ExpiredMsg](collect(cmd))
				b.Update(expired)
				So(b.state, ShouldEqual, successState)
			})
		})
	})
}

func TestAbandon(t *testing.T) {
	Convey("Given a running lookup", t, func() {
		svc := &fakeService{}
		var opened []string
		b := newTestBubble(svc, &opened)
		b.inputC.SetValue(watchURL)

		cmd := press(b, enter)
		So(b.state, ShouldEqual, loadingState)

		Convey("When the user stops waiting", func() {
			press(b, esc)
			So(b.state, ShouldEqual, idleState)

			Convey("Then the late result is ignored", func() {
				done, _ := find[lookupDoneMsg](collect(cmd))
				b.Update(done)
				So(b.state, ShouldEqual, idleState)
				So(b.found.IsPresent(), ShouldBeFalse)
				So(svc.lookups, ShouldEqual, 1)
			})
		})

		Convey("When the API fails", func() {
			svc.lookupErr = &video.UpstreamError{Message: "quota exceeded"}
			done, _ := find[lookupDoneMsg](collect(cmd))
			b.Update(done)

			So(b.state, ShouldEqual, errorState)
			So(video.Kind(b.lastError), ShouldEqual, video.KindUpstream)
			So(b.View(), ShouldContainSubstring, "quota exceeded")
		})
	})
}

func TestQualityAndHistory(t *testing.T) {
	Convey("Given the form", t, func() {
		var opened []string
		b := newTestBubble(&fakeService{}, &opened)

		Convey("Quality stays within the choices", func() {
			press(b, down)
			So(b.quality, ShouldEqual, video.Q720)
			for i := 0; i < 10; i++ {
				press(b, up)
			}
			So(b.quality, ShouldEqual, video.Q2160)
			So(b.View(), ShouldContainSubstring, "4K")
		})

		Convey("History opens and closes", func() {
			So(history.Clear(), ShouldBeNil)
			So(history.Save(&history.Record{ID: "dQw4w9WgXcQ", Title: "Song", URL: "https://cdn.test/a"}), ShouldBeNil)

			press(b, tea.KeyMsg{Type: tea.KeyCtrlR})
			So(b.state, ShouldEqual, historyState)
			So(b.historyC.Items(), ShouldHaveLength, 1)

			press(b, enter)
			So(opened, ShouldResemble, []string{"https://cdn.test/a"})

			press(b, esc)
			So(b.state, ShouldEqual, idleState)
		})

		Convey("Open failures are reported", func() {
			b.options.Open = func(string) error { return errors.New("no handler") }
			b.found = mo.Some(downloader.Result{ID: "dQw4w9WgXcQ"})
			b.lookedUp = watchURL
			b.inputC.SetValue(watchURL)
			b.setState(successState)

			cmd := press(b, enter)
			resolved, _ := find[resolveDoneMsg](collect(cmd))
			b.Update(resolved)

			So(b.state, ShouldEqual, errorState)
			So(b.lastError.Error(), ShouldContainSubstring, "no handler")
		})
	})
}
