package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, filepath.Join("tmp", "tubegrab-test"))
			So(Config(), ShouldEqual, filepath.Join("tmp", "tubegrab-test"))
			So(lo.Must(filesystem.API().IsDir(Config())), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Files live inside their directories", func() {
			So(filepath.Dir(History()), ShouldEqual, Config())
			So(filepath.Dir(DotEnv()), ShouldEqual, Config())
			So(filepath.Dir(Queries()), ShouldEqual, Cache())
		})
	})
}
