package query

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/filesystem"
	"github.com/tubegrab/tubegrab/key"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.SearchShowSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered URLs", t, func() {
		a := "https://youtu.be/dQw4w9WgXcQ"
		b := "https://youtu.be/9bZkp7q19f0"

		So(Remember(a, 1), ShouldBeNil)
		So(Remember(b, 10), ShouldBeNil)

		Convey("Then suggestions are sorted by rank", func() {
			s := SuggestMany("https://youtu.be/")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, b)
		})

		Convey("Then the best match is suggested", func() {
			So(Suggest("dQw").MustGet(), ShouldEqual, a)
		})

		Convey("Then an exact match is not suggested", func() {
			So(SuggestMany(a), ShouldNotContain, a)
		})

		Convey("Then case is kept", func() {
			So(sanitize("  https://youtu.be/dQw4w9WgXcQ "), ShouldEqual, a)
			So(Suggest("dqw").IsPresent(), ShouldBeFalse)
		})

		Convey("Then nothing is suggested when disabled", func() {
			viper.Set(key.SearchShowSuggestions, false)
			defer viper.Set(key.SearchShowSuggestions, true)
			So(SuggestMany("youtu"), ShouldBeEmpty)
		})

		Convey("Then blank input is ignored", func() {
			So(Remember("   ", 1), ShouldBeNil)
			So(SuggestMany(" "), ShouldBeEmpty)
		})
	})
}
