package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/constant"
)

func TestCommand(t *testing.T) {
	const link = "https://cdn.example.com/v.mp4?a=1&b=2"

	Convey("Given a download link", t, func() {
		Convey("Linux uses xdg-open", func() {
			cmd, ok := command(constant.Linux, link, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", link})
		})

		Convey("macOS uses open, or open -a with an app", func() {
			cmd, ok := command(constant.Darwin, link, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", link})

			cmd, ok = command(constant.Darwin, link, "Firefox")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "Firefox", link})
		})

		Convey("Windows escapes ampersands when an app is given", func() {
			cmd, ok := command(constant.Windows, link, "firefox")
			So(ok, ShouldBeTrue)
			So(cmd.Args[len(cmd.Args)-1], ShouldEqual, "https://cdn.example.com/v.mp4?a=1^&b=2")
		})

		Convey("Unknown platforms are rejected", func() {
			_, ok := command("plan9", link, "")
			So(ok, ShouldBeFalse)
			_, ok = command("plan9", link, "app")
			So(ok, ShouldBeFalse)
		})
	})
}
