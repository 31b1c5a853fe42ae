package ui

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTimer(t *testing.T) {
	Convey("Given a timer", t, func() {
		var timer Timer

		Convey("When it is armed", func() {
			msg := timer.Arm(time.Millisecond)().(ExpiredMsg)

			Convey("Then its tick fires", func() {
				So(timer.Fired(msg), ShouldBeTrue)
			})

			Convey("Then re-arming makes the old tick stale", func() {
				next := timer.Arm(time.Millisecond)().(ExpiredMsg)
				So(timer.Fired(msg), ShouldBeFalse)
				So(timer.Fired(next), ShouldBeTrue)
			})

			Convey("Then cancelling makes the tick stale", func() {
				timer.Cancel()
				So(timer.Fired(msg), ShouldBeFalse)
			})

			Convey("Then another timer at the same generation ignores it", func() {
				var other Timer
				other.Arm(time.Millisecond)
				So(other.gen, ShouldEqual, timer.gen)
				So(other.Fired(msg), ShouldBeFalse)
			})
		})
	})
}

func TestNotice(t *testing.T) {
	Convey("Given a notice", t, func() {
		var n Notice
		So(n.View("a\nb"), ShouldEqual, "a\nb")

		cmd := n.Show("saved")
		So(n.Text(), ShouldEqual, "saved")
		So(n.View("a\nb"), ShouldStartWith, "a\nb  ")
		So(n.View("a\nb"), ShouldContainSubstring, "saved")

		Convey("When a stale tick arrives nothing changes", func() {
			n.Update(ExpiredMsg{timer: &n.timer, gen: n.timer.gen - 1})
			So(n.Text(), ShouldEqual, "saved")
		})

		Convey("When a tick of another timer arrives nothing changes", func() {
			var other Timer
			n.Update(other.Arm(time.Millisecond)())
			So(n.Text(), ShouldEqual, "saved")
		})

		Convey("When its tick arrives it clears", func() {
			n.Update(cmd())
			So(n.Text(), ShouldEqual, "")
		})
	})
}
