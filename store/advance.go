package store

import (
	"sort"
	"time"

	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/slice"
)

// Update advances every entity's current state to the given scenario time.
// Kinds advance in dependency order: platforms before beams, beams before
// gates. Re-invoking with the same time and no intervening mutation is a
// no-op and fires nothing.
func (s *Store) Update(t float64) {
	if !s.hasChanged && t == s.lastUpdateTime {
		return
	}
	started := time.Now()

	// file-replay semantics unless a live clock is bound
	fileMode := s.boundClock == nil || !s.boundClock.IsLiveMode()

	s.updatePlatforms(t, fileMode)
	s.updateBeams(t)
	s.updateGates(t)
	s.updateGenericData(t)
	s.updateCategoryData(t)
	s.updateLasers(t)
	s.updateProjectors(t)
	s.updateLobGroups(t)
	s.updateCustomRenderings(t)

	s.lastUpdateTime = t
	s.hasChanged = false

	if s.metrics != nil {
		s.metrics.ObserveAdvance(time.Since(started).Seconds())
	}
	s.fanout(func(l Listener) { l.OnChange(s) })
}

// isStaticPlatform reports whether an entry's history starts at the static
// time sentinel. Later samples do not revoke static status.
func isStaticPlatform(e *platformEntry) bool {
	return e.updates.NumItems() > 0 && e.updates.FirstTime() == model.StaticTime
}

func (s *Store) updatePlatforms(t float64, fileMode bool) {
	for _, id := range s.platforms.order {
		e := s.platforms.entries[id]
		s.platforms.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		if fileMode && !isStaticPlatform(e) {
			// in file replay a platform outside its recorded span is expired
			if e.updates.NumItems() == 0 || t < e.updates.FirstTime() || t > e.updates.LastTime() {
				e.updates.SetCurrent(nil)
				continue
			}
		}
		var interp slice.Interpolator[model.PlatformUpdate]
		if s.IsInterpolationEnabled() && e.prefs.InterpolatePos {
			interp = platformInterp{s.interpolator}
		}
		e.updates.Update(t, interp)
	}
}

func (s *Store) updateBeams(t float64) {
	for _, id := range s.beams.order {
		e := s.beams.entries[id]
		s.beams.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		if e.props.Kind == model.BeamTarget {
			s.updateTargetBeam(e, t)
			continue
		}
		var interp slice.Interpolator[model.BeamUpdate]
		if s.IsInterpolationEnabled() && e.prefs.InterpolateBeamPos {
			interp = beamInterp{s.interpolator}
		}
		e.updates.Update(t, interp)
	}
}

// updateTargetBeam synthesises the current update of a target-tracking beam.
// Orientation toward the target is derived downstream from the two platform
// positions, so the synthetic update carries zeroed angles; stored beam
// history is never consulted. Either endpoint missing a valid position
// degrades the beam to no current state.
func (s *Store) updateTargetBeam(e *beamEntry, t float64) {
	host := s.platforms.get(e.props.HostId)
	target := s.platforms.get(e.prefs.TargetId)
	if host == nil || target == nil {
		e.updates.SetCurrent(nil)
		return
	}
	hostCur, targetCur := host.updates.Current(), target.updates.Current()
	if hostCur == nil || targetCur == nil || !hostCur.HasPosition || !targetCur.HasPosition {
		e.updates.SetCurrent(nil)
		return
	}
	synth := model.BeamUpdate{Time: t}
	e.updates.SetCurrent(&synth)
	// endpoints can move without a new beam record
	e.updates.SetChanged()
}

func (s *Store) updateGates(t float64) {
	for _, id := range s.gates.order {
		e := s.gates.entries[id]
		s.gates.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		if e.props.Kind == model.GateTarget {
			s.updateTargetGate(e, t)
		} else {
			var interp slice.Interpolator[model.GateUpdate]
			if s.IsInterpolationEnabled() && e.prefs.InterpolateGatePos {
				interp = gateInterp{s.interpolator}
			}
			e.updates.Update(t, interp)
		}
		// dimensions derived from the host beam's beamwidth can change
		// without a new gate record
		if cur := e.updates.Current(); cur != nil && (cur.Height <= 0 || cur.Width <= 0) {
			e.updates.SetChanged()
		}
	}
}

// updateTargetGate derives a target gate's current update from its host
// target beam's synthetic orientation.
func (s *Store) updateTargetGate(e *gateEntry, t float64) {
	hostBeam := s.beams.get(e.props.HostId)
	if hostBeam == nil || hostBeam.props.Kind != model.BeamTarget {
		e.updates.SetCurrent(nil)
		return
	}
	beamCur := hostBeam.updates.Current()
	if beamCur == nil {
		e.updates.SetCurrent(nil)
		return
	}
	synth := model.GateUpdate{
		Time:      t,
		Azimuth:   beamCur.Azimuth,
		Elevation: beamCur.Elevation,
	}
	e.updates.SetCurrent(&synth)
	e.updates.SetChanged()
}

func (s *Store) updateGenericData(t float64) {
	for _, series := range s.genericData {
		series.Update(t)
	}
}

// updateCategoryData advances every category series and fires
// OnCategoryDataChange per entity whose current category state moved. Ids
// are visited in ascending order so fan-out order is deterministic.
func (s *Store) updateCategoryData(t float64) {
	var changed []model.ObjectId
	for id, series := range s.categoryData {
		if series.Update(t) {
			changed = append(changed, id)
		}
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })
	for _, id := range changed {
		id := id
		kind := s.ObjectType(id)
		s.fanout(func(l Listener) { l.OnCategoryDataChange(s, id, kind) })
	}
}

func (s *Store) updateLasers(t float64) {
	for _, id := range s.lasers.order {
		e := s.lasers.entries[id]
		s.lasers.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		// lasers have no per-entity interpolation toggle
		var interp slice.Interpolator[model.LaserUpdate]
		if s.IsInterpolationEnabled() {
			interp = laserInterp{s.interpolator}
		}
		e.updates.Update(t, interp)
	}
}

func (s *Store) updateProjectors(t float64) {
	for _, id := range s.projectors.order {
		e := s.projectors.entries[id]
		s.projectors.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		var interp slice.Interpolator[model.ProjectorUpdate]
		if s.IsInterpolationEnabled() && e.prefs.InterpolateProjectorFov {
			interp = projectorInterp{s.interpolator}
		}
		e.updates.Update(t, interp)
	}
}

func (s *Store) updateLobGroups(t float64) {
	for _, id := range s.lobGroups.order {
		e := s.lobGroups.entries[id]
		s.lobGroups.advanceCommands(e, t)
		// commands may have retuned the live slice limits
		e.updates.SetMaxDataPoints(e.prefs.MaxDataPoints)
		e.updates.SetMaxDataSeconds(e.prefs.MaxDataSeconds)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		e.updates.Update(t, nil)
	}
}

func (s *Store) updateCustomRenderings(t float64) {
	for _, id := range s.customRenderings.order {
		e := s.customRenderings.entries[id]
		s.customRenderings.advanceCommands(e, t)
		if !e.prefs.DataDraw {
			e.updates.SetCurrent(nil)
			continue
		}
		e.updates.Update(t, nil)
	}
}
