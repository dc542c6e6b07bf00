package store

import (
	"testing"

	"github.com/signalsfoundry/simstore/model"
)

func limitedPlatform(t *testing.T, s *Store, points uint32) model.ObjectId {
	t.Helper()
	id := addPlatform(t, s, "p")
	prefs, tx := s.MutablePlatformPrefs(id)
	prefs.DataLimitPoints = points
	tx.Commit()
	tx.Release()
	return id
}

func TestLiveLimitingKeepsNewestPoints(t *testing.T) {
	s := New()
	s.SetDataLimiting(true)
	id := limitedPlatform(t, s, 3)

	for _, tm := range []float64{1, 2, 3, 4, 5} {
		addPlatformPoint(t, s, id, tm, 0)
	}

	ps := s.PlatformUpdateSlice(id)
	if got := ps.NumItems(); got != 3 {
		t.Fatalf("slice holds %d points, want 3", got)
	}
	if ps.FirstTime() != 3 || ps.LastTime() != 5 {
		t.Fatalf("kept [%v, %v], want the newest three", ps.FirstTime(), ps.LastTime())
	}
}

func TestLimitingOffRetainsEverything(t *testing.T) {
	s := New()
	id := limitedPlatform(t, s, 3)

	for _, tm := range []float64{1, 2, 3, 4, 5} {
		addPlatformPoint(t, s, id, tm, 0)
	}

	if got := s.PlatformUpdateSlice(id).NumItems(); got != 5 {
		t.Fatalf("slice holds %d points with limiting off, want 5", got)
	}
}

func TestSecondsLimitNeverEvictsNewest(t *testing.T) {
	s := New()
	s.SetDataLimiting(true)
	id := addPlatform(t, s, "p")
	prefs, tx := s.MutablePlatformPrefs(id)
	prefs.DataLimitSeconds = 2
	tx.Commit()
	tx.Release()

	addPlatformPoint(t, s, id, 0, 0)
	// a 100-second gap: the old point falls out, the new one stays
	addPlatformPoint(t, s, id, 100, 1)

	ps := s.PlatformUpdateSlice(id)
	if got := ps.NumItems(); got != 1 {
		t.Fatalf("slice holds %d points, want 1", got)
	}
	if ps.LastTime() != 100 {
		t.Fatalf("newest point evicted; last = %v", ps.LastTime())
	}
}

func TestPrefsCommitReappliesRetention(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	for _, tm := range []float64{1, 2, 3, 4, 5} {
		addPlatformPoint(t, s, id, tm, 0)
	}

	// tightening the limit while live limiting is on trims immediately
	s.SetDataLimiting(true)
	prefs, tx := s.MutablePlatformPrefs(id)
	prefs.DataLimitPoints = 2
	tx.Commit()
	tx.Release()

	if got := s.PlatformUpdateSlice(id).NumItems(); got != 2 {
		t.Fatalf("slice holds %d points after prefs commit, want 2", got)
	}
}

func TestApplyDataLimitingOnDemand(t *testing.T) {
	s := New()
	id := limitedPlatform(t, s, 2)
	for _, tm := range []float64{1, 2, 3, 4} {
		addPlatformPoint(t, s, id, tm, 0)
	}

	if got := s.PlatformUpdateSlice(id).NumItems(); got != 4 {
		t.Fatalf("precondition: %d points", got)
	}

	s.ApplyDataLimiting(id)
	if got := s.PlatformUpdateSlice(id).NumItems(); got != 2 {
		t.Fatalf("slice holds %d points after explicit limiting, want 2", got)
	}
}

func TestScenarioGenericDataLimits(t *testing.T) {
	s := New()
	s.SetDataLimiting(true)

	props, tx := s.MutableScenarioProperties()
	props.DataLimitPoints = 2
	tx.Commit()
	tx.Release()

	for _, tm := range []float64{1, 2, 3, 4} {
		gtx := s.AddGenericData(model.ScenarioId, model.GenericData{Time: tm, Tag: "mode", Value: "x"})
		gtx.Commit()
		gtx.Release()
	}

	if got := s.GenericDataSlice(model.ScenarioId).NumItems(); got != 2 {
		t.Fatalf("scenario generic data holds %d samples, want 2", got)
	}
}

func TestGenericDuplicateSuppressionUnderLiveLimiting(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")

	props, tx := s.MutableScenarioProperties()
	props.IgnoreDuplicateGenericData = true
	tx.Commit()
	tx.Release()

	insert := func(tm float64, value string) {
		t.Helper()
		gtx := s.AddGenericData(id, model.GenericData{Time: tm, Tag: "state", Value: value})
		gtx.Commit()
		gtx.Release()
	}

	// suppression is a live-mode behavior; without limiting duplicates stay
	insert(1, "on")
	insert(2, "on")
	if got := s.GenericDataSlice(id).NumItems(); got != 2 {
		t.Fatalf("duplicates suppressed with limiting off: %d", got)
	}

	s.SetDataLimiting(true)
	insert(3, "on")
	if got := s.GenericDataSlice(id).NumItems(); got != 2 {
		t.Fatalf("back-to-back duplicate inserted under live limiting: %d", got)
	}
	insert(4, "off")
	if got := s.GenericDataSlice(id).NumItems(); got != 3 {
		t.Fatalf("changed value dropped as a duplicate: %d", got)
	}
}
