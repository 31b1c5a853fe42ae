package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/filesystem"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "download", "downloads"), ShouldEqual, "1 download")
		So(Quantify(0, "download", "downloads"), ShouldEqual, "0 downloads")
		So(Quantify(2, "download", "downloads"), ShouldEqual, "2 downloads")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("history file"), ShouldEqual, "History file")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMax(t *testing.T) {
	Convey("Max", t, func() {
		So(Max(720, 2160, 1080), ShouldEqual, 2160)
		So(Max[int](), ShouldEqual, 0)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		So(fs.MkdirAll("/data/nested", 0o755), ShouldBeNil)
		So(fs.WriteFile("/data/nested/file.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("removes single files", func() {
			So(Delete("/data/nested/file.json"), ShouldBeNil)
			exists, _ := fs.Exists("/data/nested/file.json")
			So(exists, ShouldBeFalse)
		})

		Convey("removes directory trees", func() {
			So(Delete("/data"), ShouldBeNil)
			exists, _ := fs.DirExists("/data")
			So(exists, ShouldBeFalse)
		})

		Convey("fails on missing paths", func() {
			So(Delete("/missing"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("idle")
		s.Push("history")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "history")
		So(s.Pop(), ShouldEqual, "history")
		So(s.Pop(), ShouldEqual, "idle")
		So(s.Pop(), ShouldEqual, "")
	})
}
