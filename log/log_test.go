package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestLog(t *testing.T) {
	Convey("Given the logging facade", t, func() {
		Convey("When logs are disabled nothing is written", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			var buf bytes.Buffer
			configure(&buf, false, "debug")
			Info("hidden")
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("When logs are enabled entries reach the output", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)

			var buf bytes.Buffer
			configure(&buf, true, "debug")
			Trace("selected variant", Fields{"quality": "720"})
			So(buf.String(), ShouldContainSubstring, `"quality":"720"`)
			So(buf.String(), ShouldContainSubstring, "selected variant")
		})

		Convey("An unknown level falls back to info", func() {
			viper.Set(key.LogsWrite, true)
			So(Setup(), ShouldBeNil)

			var buf bytes.Buffer
			configure(&buf, false, "chatty")
			Debugf("dropped %d", 1)
			Infof("kept %d", 2)
			So(buf.String(), ShouldNotContainSubstring, "dropped")
			So(buf.String(), ShouldContainSubstring, "kept 2")
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		})
	})
}
