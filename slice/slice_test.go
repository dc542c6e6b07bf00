package slice

import (
	"math"
	"testing"

	"github.com/signalsfoundry/simstore/model"
)

func platformAt(t, x float64) model.PlatformUpdate {
	return model.PlatformUpdate{
		Time:        t,
		Position:    model.Position{X: x},
		HasPosition: true,
	}
}

func TestSeriesInsertKeepsTimeOrder(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	for _, tm := range []float64{5, 1, 3, 2, 4} {
		s.Insert(platformAt(tm, tm*10))
	}

	if s.NumItems() != 5 {
		t.Fatalf("NumItems = %d, want 5", s.NumItems())
	}
	for i := 0; i < 5; i++ {
		if got := s.At(i).Time; got != float64(i+1) {
			t.Fatalf("item %d time = %v, want %v", i, got, i+1)
		}
	}
	if s.FirstTime() != 1 || s.LastTime() != 5 {
		t.Fatalf("bounds = (%v, %v), want (1, 5)", s.FirstTime(), s.LastTime())
	}
}

func TestSeriesInsertDuplicateTimeReplaces(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(2, 20))
	s.Insert(platformAt(2, 99))

	if s.NumItems() != 1 {
		t.Fatalf("NumItems = %d, want 1", s.NumItems())
	}
	if got := s.At(0).Position.X; got != 99 {
		t.Fatalf("replaced X = %v, want 99", got)
	}
}

func TestSeriesEmptyBoundsSentinel(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	if s.FirstTime() != -1 || s.LastTime() != -1 {
		t.Fatalf("empty bounds = (%v, %v), want (-1, -1)", s.FirstTime(), s.LastTime())
	}
}

func TestSeriesUpdateCursorNearest(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(10, 1))
	s.Insert(platformAt(20, 2))

	s.Update(5, nil)
	if s.Current() != nil {
		t.Fatalf("current before first record = %+v, want nil", s.Current())
	}

	s.Update(15, nil)
	cur := s.Current()
	if cur == nil || cur.Time != 10 {
		t.Fatalf("current at t=15 = %+v, want record at 10", cur)
	}

	s.Update(20, nil)
	cur = s.Current()
	if cur == nil || cur.Time != 20 {
		t.Fatalf("current at t=20 = %+v, want record at 20", cur)
	}
}

type midpointInterp struct{}

func (midpointInterp) Interpolate(a, b model.PlatformUpdate, tm float64) model.PlatformUpdate {
	f := (tm - a.Time) / (b.Time - a.Time)
	return model.PlatformUpdate{
		Time:        tm,
		Position:    model.Position{X: a.Position.X + (b.Position.X-a.Position.X)*f},
		HasPosition: true,
	}
}

func TestSeriesUpdateInterpolatesBetweenBrackets(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(0, 0))
	s.Insert(platformAt(10, 100))

	s.Update(5, midpointInterp{})
	cur := s.Current()
	if cur == nil || cur.Time != 5 || cur.Position.X != 50 {
		t.Fatalf("interpolated current = %+v, want time=5 X=50", cur)
	}

	// exact sample time skips interpolation
	s.Update(10, midpointInterp{})
	cur = s.Current()
	if cur == nil || cur.Position.X != 100 {
		t.Fatalf("current at sample time = %+v, want stored record", cur)
	}
}

func TestSeriesChangedFlag(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(1, 1))
	s.ClearChanged()

	s.Update(2, nil)
	if !s.HasChanged() {
		t.Fatalf("cursor move should set changed")
	}
	s.ClearChanged()

	s.Update(3, nil)
	if s.HasChanged() {
		t.Fatalf("same current record should not set changed")
	}
}

func TestSeriesLimitByPrefsDropsOldest(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	for tm := 1.0; tm <= 5; tm++ {
		s.Insert(platformAt(tm, tm))
	}

	s.LimitByPrefs(CommonLimits{MaxPoints: 3})
	if s.NumItems() != 3 || s.FirstTime() != 3 || s.LastTime() != 5 {
		t.Fatalf("after points limit: n=%d bounds=(%v, %v), want 3 records [3,5]", s.NumItems(), s.FirstTime(), s.LastTime())
	}

	s.LimitByPrefs(CommonLimits{MaxSeconds: 1})
	if s.NumItems() != 2 || s.FirstTime() != 4 {
		t.Fatalf("after seconds limit: n=%d first=%v, want 2 records from 4", s.NumItems(), s.FirstTime())
	}
}

func TestSeriesLimitNeverDropsNewest(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(100, 1))

	s.LimitByPrefs(CommonLimits{MaxSeconds: 0.001})
	if s.NumItems() != 1 {
		t.Fatalf("newest record evicted; NumItems = %d, want 1", s.NumItems())
	}
}

func TestSeriesFlushRangeHalfOpen(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	for tm := 1.0; tm <= 5; tm++ {
		s.Insert(platformAt(tm, tm))
	}

	s.FlushRange(2, 4)
	if s.NumItems() != 3 {
		t.Fatalf("NumItems after FlushRange(2,4) = %d, want 3", s.NumItems())
	}
	for i, want := range []float64{1, 4, 5} {
		if got := s.At(i).Time; got != want {
			t.Fatalf("survivor %d time = %v, want %v", i, got, want)
		}
	}
}

func TestSeriesFlushResetsAndDirties(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(1, 1))
	s.Update(1, nil)
	s.ClearChanged()

	s.Flush()
	if s.NumItems() != 0 {
		t.Fatalf("NumItems after Flush = %d, want 0", s.NumItems())
	}
	if !s.HasChanged() {
		t.Fatalf("Flush should set changed")
	}
}

func TestSeriesLiveLimitsApplyOnInsert(t *testing.T) {
	s := NewSeries[model.LobGroupUpdate]()
	s.SetMaxDataPoints(2)
	for tm := 1.0; tm <= 4; tm++ {
		s.Insert(model.LobGroupUpdate{Time: tm})
	}

	if s.NumItems() != 2 || s.FirstTime() != 3 {
		t.Fatalf("live-limited series n=%d first=%v, want 2 records from 3", s.NumItems(), s.FirstTime())
	}

	s.SetMaxDataSeconds(0.5)
	if s.NumItems() != 1 || s.FirstTime() != 4 {
		t.Fatalf("after seconds tune n=%d first=%v, want only newest", s.NumItems(), s.FirstTime())
	}
}

func TestSeriesUpdateBeyondLastUsesLast(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(1, 1))
	s.Update(math.Inf(1), nil)
	if cur := s.Current(); cur == nil || cur.Time != 1 {
		t.Fatalf("current past end = %+v, want last record", cur)
	}
}

func TestSeriesSetCurrentSameTimeStaysClean(t *testing.T) {
	s := NewSeries[model.PlatformUpdate]()
	s.Insert(platformAt(5, 50))
	s.Update(5, nil)
	s.ClearChanged()

	// re-pointing the cursor at a sample with the same time is not a move
	same := platformAt(5, 50)
	s.SetCurrent(&same)
	if s.HasChanged() {
		t.Fatalf("same-time SetCurrent dirtied the series")
	}

	later := platformAt(6, 60)
	s.SetCurrent(&later)
	if !s.HasChanged() {
		t.Fatalf("SetCurrent to a new time left the series clean")
	}
	if s.Current().Time != 6 {
		t.Fatalf("Current().Time = %v, want 6", s.Current().Time)
	}

	s.ClearChanged()
	s.SetCurrent(nil)
	if !s.HasChanged() || s.Current() != nil {
		t.Fatalf("SetCurrent(nil) did not clear and dirty")
	}
}
