package store

import (
	"testing"

	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/timectrl"
)

func TestAdvanceSameTimeTwiceFiresOnce(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 0, 0)
	addPlatformPoint(t, s, id, 10, 100)

	rec := &eventRecorder{}
	s.AddListener(rec)

	s.Update(5)
	s.Update(5)

	if rec.changes != 1 {
		t.Fatalf("OnChange fired %d times, want 1 (repeat advance is a no-op)", rec.changes)
	}

	// a mutation re-arms the same cursor time
	addPlatformPoint(t, s, id, 20, 200)
	s.Update(5)
	if rec.changes != 2 {
		t.Fatalf("OnChange fired %d times after mutation, want 2", rec.changes)
	}
}

func TestAdvanceStepsCurrentToNearestSample(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 0, 0)
	addPlatformPoint(t, s, id, 10, 100)

	s.Update(4)
	cur := s.PlatformUpdateSlice(id).Current()
	if cur == nil || cur.Time != 0 {
		t.Fatalf("Current at t=4 = %+v, want sample at 0", cur)
	}

	s.Update(10)
	cur = s.PlatformUpdateSlice(id).Current()
	if cur == nil || cur.Time != 10 || cur.Position.X != 100 {
		t.Fatalf("Current at t=10 = %+v, want sample at 10", cur)
	}
}

func TestAdvanceInterpolatesBetweenSamples(t *testing.T) {
	s := New()
	s.SetInterpolator(LinearInterpolator{})
	s.EnableInterpolation(true)

	id := addPlatform(t, s, "p")
	prefs, tx := s.MutablePlatformPrefs(id)
	prefs.InterpolatePos = true
	tx.Commit()
	tx.Release()

	addPlatformPoint(t, s, id, 0, 0)
	addPlatformPoint(t, s, id, 10, 100)

	s.Update(5)
	cur := s.PlatformUpdateSlice(id).Current()
	if cur == nil {
		t.Fatalf("no current state at t=5")
	}
	if cur.Position.X != 50 {
		t.Fatalf("interpolated X = %v, want 50", cur.Position.X)
	}
}

func TestDataDrawOffClearsCurrent(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 0, 0)

	s.Update(0)
	if s.PlatformUpdateSlice(id).Current() == nil {
		t.Fatalf("drawn platform has no current state")
	}

	prefs, tx := s.MutablePlatformPrefs(id)
	prefs.DataDraw = false
	tx.Commit()
	tx.Release()

	s.Update(0)
	if s.PlatformUpdateSlice(id).Current() != nil {
		t.Fatalf("current state survives DataDraw off")
	}
}

func TestFileModeExpiresPlatformOutsideRecordedSpan(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 5, 0)
	addPlatformPoint(t, s, id, 10, 0)

	s.Update(7)
	if s.PlatformUpdateSlice(id).Current() == nil {
		t.Fatalf("platform expired inside its recorded span")
	}

	s.Update(11)
	if s.PlatformUpdateSlice(id).Current() != nil {
		t.Fatalf("platform still current past its last sample in file mode")
	}

	s.Update(2)
	if s.PlatformUpdateSlice(id).Current() != nil {
		t.Fatalf("platform current before its first sample in file mode")
	}
}

func TestStaticPlatformNeverExpires(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "tower")
	addPlatformPoint(t, s, id, model.StaticTime, 42)

	s.Update(1e6)
	cur := s.PlatformUpdateSlice(id).Current()
	if cur == nil || cur.Position.X != 42 {
		t.Fatalf("static platform expired: current = %+v", cur)
	}
}

func TestStaticPlatformWithExtraSamplesNeverExpires(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "tower")
	addPlatformPoint(t, s, id, model.StaticTime, 42)
	addPlatformPoint(t, s, id, 5, 50)
	addPlatformPoint(t, s, id, 10, 60)

	// far outside the timed samples' span; a -1 first record still
	// marks the platform static, so it must not expire
	s.Update(100)
	cur := s.PlatformUpdateSlice(id).Current()
	if cur == nil {
		t.Fatalf("static platform with extra samples expired")
	}
	if cur.Time != 10 {
		t.Fatalf("current time = %v, want 10", cur.Time)
	}
}

func TestLiveModeSkipsExpiry(t *testing.T) {
	s := New()
	s.BindClock(timectrl.NewController(0, 1, timectrl.Live))

	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 5, 1)

	// past the last sample, but live mode extrapolates instead of expiring
	s.Update(100)
	cur := s.PlatformUpdateSlice(id).Current()
	if cur == nil || cur.Time != 5 {
		t.Fatalf("live-mode current = %+v, want held last sample", cur)
	}
}

func TestTargetBeamRequiresBothEndpoints(t *testing.T) {
	s := New()
	host := addPlatform(t, s, "radar")
	target := addPlatform(t, s, "bogey")
	beam := addBeam(t, s, host, model.BeamTarget, "track")

	prefs, tx := s.MutableBeamPrefs(beam)
	prefs.TargetId = target
	tx.Commit()
	tx.Release()

	addPlatformPoint(t, s, host, 0, 0)

	// target platform has no position yet
	s.Update(0)
	if s.BeamUpdateSlice(beam).Current() != nil {
		t.Fatalf("target beam current without a target position")
	}

	addPlatformPoint(t, s, target, 0, 1000)
	s.Update(0)
	cur := s.BeamUpdateSlice(beam).Current()
	if cur == nil {
		t.Fatalf("target beam has no current with both endpoints positioned")
	}
	if cur.Time != 0 || cur.Azimuth != 0 || cur.Elevation != 0 || cur.Range != 0 {
		t.Fatalf("synthetic beam update = %+v, want zeroed angles at cursor time", cur)
	}

	// stored history is never consulted for target beams
	addPlatformPoint(t, s, host, 1, 0)
	addPlatformPoint(t, s, target, 1, 1200)
	btx := s.AddBeamUpdate(beam, model.BeamUpdate{Time: 1, Azimuth: 9.9})
	btx.Commit()
	btx.Release()
	s.Update(1)
	cur = s.BeamUpdateSlice(beam).Current()
	if cur == nil || cur.Azimuth != 0 {
		t.Fatalf("target beam consulted stored history: %+v", cur)
	}
}

func TestTargetGateFollowsHostBeam(t *testing.T) {
	s := New()
	host := addPlatform(t, s, "radar")
	target := addPlatform(t, s, "bogey")
	beam := addBeam(t, s, host, model.BeamTarget, "track")
	gate := addGate(t, s, beam, model.GateTarget, "range-gate")

	prefs, tx := s.MutableBeamPrefs(beam)
	prefs.TargetId = target
	tx.Commit()
	tx.Release()

	addPlatformPoint(t, s, host, 0, 0)

	s.Update(0)
	if s.GateUpdateSlice(gate).Current() != nil {
		t.Fatalf("target gate current while host beam has no current")
	}

	addPlatformPoint(t, s, target, 0, 1000)
	s.Update(0)
	cur := s.GateUpdateSlice(gate).Current()
	if cur == nil {
		t.Fatalf("target gate has no current with host beam tracking")
	}
	if cur.Azimuth != s.BeamUpdateSlice(beam).Current().Azimuth {
		t.Fatalf("gate azimuth %v does not follow beam", cur.Azimuth)
	}
}

func TestGateBeamwidthDerivedDimensionsAlwaysDirty(t *testing.T) {
	s := New()
	host := addPlatform(t, s, "radar")
	beam := addBeam(t, s, host, model.BeamBody, "b")
	gate := addGate(t, s, beam, model.GateBody, "g")

	addPlatformPoint(t, s, host, 0, 0)
	gtx := s.AddGateUpdate(gate, model.GateUpdate{Time: 0, Height: 0, Width: 0.1})
	gtx.Commit()
	gtx.Release()

	s.Update(0)
	gs := s.GateUpdateSlice(gate)
	if gs.Current() == nil {
		t.Fatalf("gate has no current")
	}
	gs.ClearChanged()

	// nothing mutated, but beamwidth-derived dimensions must re-dirty
	addPlatformPoint(t, s, host, 1, 1)
	s.Update(1)
	if !gs.HasChanged() {
		t.Fatalf("gate with Height<=0 not re-dirtied on advance")
	}
}

func TestCommandsPatchPrefsAtTheirTime(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")
	addPlatformPoint(t, s, id, 0, 0)

	icon := "alert.png"
	ctx := s.AddPlatformCommand(id, model.PlatformCommand{Time: 5, Icon: &icon})
	ctx.Commit()
	ctx.Release()

	s.Update(4)
	prefs, _ := s.PlatformPrefs(id)
	if prefs.Icon != "" {
		t.Fatalf("command applied before its time: Icon = %q", prefs.Icon)
	}

	s.Update(6)
	prefs, _ = s.PlatformPrefs(id)
	if prefs.Icon != "alert.png" {
		t.Fatalf("command not applied at t=6: Icon = %q", prefs.Icon)
	}
}

func TestLobGroupCommandTunesRetentionLive(t *testing.T) {
	s := New()
	props, tx := s.AddLobGroup()
	id := props.Id
	tx.Commit()
	tx.Release()

	prefs, ptx := s.MutableLobGroupPrefs(id)
	prefs.DataDraw = true
	ptx.Commit()
	ptx.Release()

	for i := 0; i < 5; i++ {
		utx := s.AddLobGroupUpdate(id, model.LobGroupUpdate{Time: float64(i)})
		utx.Commit()
		utx.Release()
	}

	points := uint32(2)
	ctx := s.AddLobGroupCommand(id, model.LobGroupCommand{Time: 0, MaxDataPoints: &points})
	ctx.Commit()
	ctx.Release()

	s.Update(10)
	ls := s.LobGroupUpdateSlice(id)
	if got := ls.NumItems(); got != 2 {
		t.Fatalf("LOB slice holds %d points after live retune, want 2", got)
	}
	if ls.FirstTime() != 3 || ls.LastTime() != 4 {
		t.Fatalf("LOB retention kept [%v, %v], want the newest two", ls.FirstTime(), ls.LastTime())
	}
}

func TestCategoryDataAdvanceFiresPerChangedEntity(t *testing.T) {
	s := New()
	a := addPlatform(t, s, "a")
	b := addPlatform(t, s, "b")

	cm := s.CategoryNameManager()
	affinity := cm.AddCategoryName("Affinity")
	friendly := cm.AddCategoryValue(affinity, "Friendly")
	hostile := cm.AddCategoryValue(affinity, "Hostile")

	for _, id := range []model.ObjectId{a, b} {
		tx := s.AddCategoryData(id, model.CategoryData{Time: 0, Name: affinity, Value: friendly})
		tx.Commit()
		tx.Release()
	}
	tx := s.AddCategoryData(b, model.CategoryData{Time: 5, Name: affinity, Value: hostile})
	tx.Commit()
	tx.Release()

	rec := &eventRecorder{}
	s.AddListener(rec)

	s.Update(0)
	if len(rec.category) != 2 || rec.category[0] != a || rec.category[1] != b {
		t.Fatalf("category fan-out = %v, want [%d %d] ascending", rec.category, a, b)
	}

	rec.category = nil
	s.Update(5)
	if len(rec.category) != 1 || rec.category[0] != b {
		t.Fatalf("category fan-out at t=5 = %v, want only %d", rec.category, b)
	}
}

func TestGenericDataAdvanceIsSilent(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")

	tx := s.AddGenericData(id, model.GenericData{Time: 0, Tag: "fuel", Value: "full"})
	tx.Commit()
	tx.Release()

	rec := &eventRecorder{}
	s.AddListener(rec)

	s.Update(0)
	if v, ok := s.GenericDataSlice(id).CurrentValue("fuel"); !ok || v != "full" {
		t.Fatalf("generic current = %q, %v", v, ok)
	}
	if len(rec.category) != 0 {
		t.Fatalf("generic data advance fired category notifications")
	}
	if rec.changes != 1 {
		t.Fatalf("OnChange fired %d times, want 1", rec.changes)
	}
}

func TestAdvanceOrderPlatformsBeforeBeamsBeforeGates(t *testing.T) {
	s := New()
	host := addPlatform(t, s, "radar")
	target := addPlatform(t, s, "bogey")
	beam := addBeam(t, s, host, model.BeamTarget, "track")
	gate := addGate(t, s, beam, model.GateTarget, "g")

	prefs, tx := s.MutableBeamPrefs(beam)
	prefs.TargetId = target
	tx.Commit()
	tx.Release()

	addPlatformPoint(t, s, host, 3, 0)
	addPlatformPoint(t, s, target, 3, 500)

	// a single advance resolves the whole chain: the beam sees the
	// platforms' fresh positions and the gate sees the beam's fresh state
	s.Update(3)
	if s.BeamUpdateSlice(beam).Current() == nil {
		t.Fatalf("beam not resolved in the same advance as its platforms")
	}
	if s.GateUpdateSlice(gate).Current() == nil {
		t.Fatalf("gate not resolved in the same advance as its beam")
	}
}
