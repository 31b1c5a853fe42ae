package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/tubegrab/tubegrab/video"
)

func TestObserve(t *testing.T) {
	Convey("Observers count by outcome", t, func() {
		before := testutil.ToFloat64(UpstreamRequests.WithLabelValues("details", "ok"))
		ObserveUpstream("details", nil, 10*time.Millisecond)
		So(testutil.ToFloat64(UpstreamRequests.WithLabelValues("details", "ok")), ShouldEqual, before+1)

		ObserveUpstream("variants", &video.UpstreamError{}, time.Millisecond)
		So(testutil.ToFloat64(UpstreamRequests.WithLabelValues("variants", "upstream")), ShouldBeGreaterThanOrEqualTo, 1)

		ObserveSelection(video.Q1080, video.ErrNoEligibleVariant)
		So(testutil.ToFloat64(Selections.WithLabelValues("1080", "no_eligible_variant")), ShouldBeGreaterThanOrEqualTo, 1)

		So(outcome(errors.New("x")), ShouldEqual, "unknown")
	})
}
