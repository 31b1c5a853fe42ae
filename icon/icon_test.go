package icon

import (
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tubegrab/tubegrab/key"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		for i := range icons {
			target := i

			Convey(fmt.Sprintf("It renders icon %d for each variant", target), func() {
				for _, variant := range AvailableVariants() {
					viper.Set(key.IconsVariant, variant)
					So(Get(target), ShouldNotBeEmpty)
				}
			})
		}

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Fail), ShouldBeEmpty)
		})

		Convey("It returns empty for an unknown icon", func() {
			viper.Set(key.IconsVariant, plain)
			So(Get(Icon(999)), ShouldBeEmpty)
		})
	})
}
