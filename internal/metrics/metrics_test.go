package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/zhytomyr-tourism/internal/domain"
)

func TestObserveRefresh(t *testing.T) {
	before := testutil.ToFloat64(RefreshTotal.WithLabelValues("test", RefreshSuccess))

	ObserveRefresh("test", RefreshSuccess, 15*time.Millisecond)

	after := testutil.ToFloat64(RefreshTotal.WithLabelValues("test", RefreshSuccess))
	assert.Equal(t, before+1, after)
}

func TestObserveSnapshot(t *testing.T) {
	computed := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	ObserveSnapshot(&domain.Snapshot{
		ComputedAt: computed,
		Aggregate: domain.Aggregate{
			Totals: domain.Totals{
				TotalObjects:       10,
				UnknownCount:       2,
				LocatedCount:       6,
				OutsideDistricts:   1,
				InvalidCoordinates: 1,
				MissingCoordinates: 2,
			},
		},
	})

	assert.Equal(t, 10.0, testutil.ToFloat64(SnapshotObjects.WithLabelValues("total")))
	assert.Equal(t, 6.0, testutil.ToFloat64(SnapshotObjects.WithLabelValues(string(domain.PlacementLocated))))
	assert.Equal(t, 2.0, testutil.ToFloat64(SnapshotObjects.WithLabelValues(string(domain.PlacementNoCoordinates))))
	assert.Equal(t, 2.0, testutil.ToFloat64(UnknownCategoryObjects))
	assert.Equal(t, float64(computed.Unix()), testutil.ToFloat64(SnapshotTimestamp))
}
