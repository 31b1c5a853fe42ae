package history

import (
	"testing"
	"time"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/video"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an opened link", t, func() {
		So(Clear(), ShouldBeNil)

		meta := video.Metadata{Title: mo.Some("Song")}
		chosen := video.Variant{Extension: "mp4", HasAudio: true, Quality: "720p", URL: "https://cdn.test/720"}
		record := NewRecord("dQw4w9WgXcQ", meta, video.Q1080, chosen)

		So(record.Author, ShouldEqual, video.PlaceholderAuthor)
		So(record.String(), ShouldEqual, "Song (720p)")

		Convey("When saving the record", func() {
			So(Save(record), ShouldBeNil)

			Convey("Then it is listed", func() {
				records, err := Get()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(records[0].URL, ShouldEqual, chosen.URL)
				So(records[0].Quality, ShouldEqual, 1080)
			})

			Convey("Then saving the same video replaces it", func() {
				again := *record
				again.Selected = "1080p"
				So(Save(&again), ShouldBeNil)

				records, err := Get()
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 1)
				So(records[0].Selected, ShouldEqual, "1080p")
			})

			Convey("Then newer records come first", func() {
				newer := *record
				newer.ID = "aaaaaaaaaaa"
				newer.SavedAt = record.SavedAt.Add(time.Minute)
				So(Save(&newer), ShouldBeNil)

				records, err := Get()
				So(err, ShouldBeNil)
				So(records[0].ID, ShouldEqual, "aaaaaaaaaaa")
			})

			Convey("Then it can be removed", func() {
				So(Remove(record.ID), ShouldBeNil)
				records, err := Get()
				So(err, ShouldBeNil)
				So(records, ShouldBeEmpty)
			})
		})
	})
}
