package store

import (
	"math"

	"github.com/signalsfoundry/simstore/internal/logging"
	"github.com/signalsfoundry/simstore/model"
)

// FlushScope selects how far a flush reaches from its target entity.
type FlushScope int

const (
	// FlushSingle flushes one entity only.
	FlushSingle FlushScope = iota
	// FlushRecursive flushes the entity and every entity hosted on it,
	// transitively.
	FlushRecursive
)

// FlushFieldSet selects which record categories a flush discards,
// composable as a bit set.
type FlushFieldSet uint8

const (
	FlushUpdates FlushFieldSet = 1 << iota
	FlushCommands
	FlushCategoryData
	FlushGenericData
	FlushDataTables

	// FlushExcludeMinusOne clamps the flush start to 0 so records at the
	// static time -1 survive.
	FlushExcludeMinusOne

	FlushAllFields = FlushUpdates | FlushCommands | FlushCategoryData |
		FlushGenericData | FlushDataTables
)

// Has reports whether the set includes the given field bit.
func (f FlushFieldSet) Has(bit FlushFieldSet) bool { return f&bit != 0 }

// FlushType names the flush presets exposed at the boundary. Each is sugar
// over the (scope, fields, start, end) primitive.
type FlushType int

const (
	// FlushNonRecursive flushes one entity's data except data tables,
	// keeping static records.
	FlushNonRecursive FlushType = iota
	// FlushNonRecursiveTspiStatic flushes one entity's data except data
	// tables, including static records.
	FlushNonRecursiveTspiStatic
	// FlushRecursiveAll flushes an entity subtree, keeping static records.
	FlushRecursiveAll
	// FlushNonRecursiveTspiOnly flushes only one entity's updates,
	// including static records.
	FlushNonRecursiveTspiOnly
	// FlushNonRecursiveData flushes one entity's updates and commands.
	FlushNonRecursiveData
)

// Flush applies a named flush preset to an entity. Id 0 always flushes the
// whole scenario recursively.
func (s *Store) Flush(id model.ObjectId, flushType FlushType) {
	if id == model.ScenarioId {
		flushType = FlushRecursiveAll
	}
	switch flushType {
	case FlushNonRecursive:
		s.FlushFields(id, FlushSingle, (FlushAllFields&^FlushDataTables)|FlushExcludeMinusOne)
	case FlushNonRecursiveTspiStatic:
		s.FlushFields(id, FlushSingle, FlushAllFields&^FlushDataTables)
	case FlushRecursiveAll:
		s.FlushFields(id, FlushRecursive, FlushAllFields|FlushExcludeMinusOne)
	case FlushNonRecursiveTspiOnly:
		s.FlushFields(id, FlushSingle, FlushUpdates)
	case FlushNonRecursiveData:
		s.FlushFields(id, FlushSingle, FlushUpdates|FlushCommands)
	}
}

// FlushFields flushes all records in the selected categories.
func (s *Store) FlushFields(id model.ObjectId, scope FlushScope, fields FlushFieldSet) {
	s.FlushFieldsRange(id, scope, fields, model.StaticTime, math.Inf(1))
}

// FlushFieldsRange flushes records in the selected categories within the
// half-open time range [start, end). Id 0 flushes every platform subtree,
// every custom rendering, scenario-global generic data, and scenario data
// tables. Flushing an unknown id is a silent no-op.
func (s *Store) FlushFieldsRange(id model.ObjectId, scope FlushScope, fields FlushFieldSet, start, end float64) {
	if fields.Has(FlushExcludeMinusOne) && start < 0 {
		start = 0
	}
	if id == model.ScenarioId {
		for _, pid := range s.platforms.ids() {
			s.flushEntity(pid, FlushRecursive, fields, start, end)
		}
		for _, cid := range s.customRenderings.ids() {
			s.flushEntity(cid, FlushSingle, fields, start, end)
		}
		if fields.Has(FlushGenericData) {
			flushSeriesRange(s.genericData[model.ScenarioId], start, end)
		}
		if fields.Has(FlushDataTables) {
			s.tables.FlushOwner(model.ScenarioId, start, end)
		}
	} else {
		if s.ObjectType(id) == model.NoneType {
			return
		}
		s.flushEntity(id, scope, fields, start, end)
	}

	s.hasChanged = true
	if s.metrics != nil {
		s.metrics.IncFlushes()
	}
	s.log.Debug("flush",
		logging.Uint64("id", uint64(id)),
		logging.Float64("start", start),
		logging.Float64("end", end))
	s.fanout(func(l Listener) { l.OnFlush(s, id) })
	if fields.Has(FlushUpdates) {
		s.newUpdates.OnNewUpdatesFlush(s, id)
	}
}

// rangedSeries is the flushable surface shared by generic and category
// series.
type rangedSeries interface {
	Flush()
	FlushRange(start, end float64)
}

func flushSeriesRange(series rangedSeries, start, end float64) {
	if series == nil {
		return
	}
	if start < 0 && math.IsInf(end, 1) {
		series.Flush()
		return
	}
	series.FlushRange(start, end)
}

func (s *Store) flushEntity(id model.ObjectId, scope FlushScope, fields FlushFieldSet, start, end float64) {
	kind := s.ObjectType(id)
	switch kind {
	case model.PlatformType:
		s.platforms.flushData(s.platforms.get(id), fields, start, end)
	case model.BeamType:
		s.beams.flushData(s.beams.get(id), fields, start, end)
	case model.GateType:
		s.gates.flushData(s.gates.get(id), fields, start, end)
	case model.LaserType:
		s.lasers.flushData(s.lasers.get(id), fields, start, end)
	case model.ProjectorType:
		s.projectors.flushData(s.projectors.get(id), fields, start, end)
	case model.LobGroupType:
		s.lobGroups.flushData(s.lobGroups.get(id), fields, start, end)
	case model.CustomRenderingType:
		s.customRenderings.flushData(s.customRenderings.get(id), fields, start, end)
	default:
		return
	}

	if fields.Has(FlushCategoryData) {
		flushSeriesRange(s.categoryData[id], start, end)
	}
	if fields.Has(FlushGenericData) {
		flushSeriesRange(s.genericData[id], start, end)
	}
	if fields.Has(FlushDataTables) {
		s.tables.FlushOwner(id, start, end)
	}

	if scope != FlushRecursive {
		return
	}
	switch kind {
	case model.PlatformType:
		for _, child := range s.beams.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
		for _, child := range s.lasers.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
		for _, child := range s.projectors.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
		for _, child := range s.lobGroups.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
		for _, child := range s.customRenderings.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
	case model.BeamType:
		for _, child := range s.gates.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
		for _, child := range s.projectors.idsForHost(id) {
			s.flushEntity(child, FlushRecursive, fields, start, end)
		}
	}
}

// ApplyDataLimiting re-applies the retention policy across one entity's
// slices immediately, independent of an insert.
func (s *Store) ApplyDataLimiting(id model.ObjectId) {
	limits := s.entityLimits(id)
	switch s.ObjectType(id) {
	case model.PlatformType:
		s.platforms.dataLimit(s.platforms.get(id))
	case model.BeamType:
		s.beams.dataLimit(s.beams.get(id))
	case model.GateType:
		s.gates.dataLimit(s.gates.get(id))
	case model.LaserType:
		s.lasers.dataLimit(s.lasers.get(id))
	case model.ProjectorType:
		s.projectors.dataLimit(s.projectors.get(id))
	case model.LobGroupType:
		s.lobGroups.dataLimit(s.lobGroups.get(id))
	case model.CustomRenderingType:
		s.customRenderings.dataLimit(s.customRenderings.get(id))
	default:
		if id != model.ScenarioId {
			return
		}
	}
	if g := s.genericData[id]; g != nil {
		g.LimitByPrefs(limits)
	}
	if c := s.categoryData[id]; c != nil {
		c.LimitByPrefs(limits)
	}
}
