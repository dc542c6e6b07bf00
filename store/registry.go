package store

import (
	"github.com/signalsfoundry/simstore/internal/logging"
	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/slice"
)

// Generic accessor plumbing shared by the seven entity kinds. The exported
// per-kind methods below are thin wrappers; all behaviour lives here.

func newEntityOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], props P, id model.ObjectId, defaults F,
) (*entry[P, F, U, C], Transaction) {
	e := newEntry[P, F, U, C](props)
	tx := &newEntryTx{
		s:    s,
		id:   id,
		kind: c.kind,
		install: func() {
			e.prefs = defaults
			c.put(id, e)
			s.genericData[id] = e.generic
			s.categoryData[id] = e.category
			s.nameCache.Add(c.common(&e.prefs).Name, id, c.kind)
			s.log.Debug("entity added",
				logging.Uint64("id", uint64(id)),
				logging.String("kind", c.kind.String()))
		},
	}
	return e, tx
}

func propertiesOf[P comparable, F comparable, U slice.Record, C command[F]](
	c *collection[P, F, U, C], id model.ObjectId,
) (P, bool) {
	e := c.get(id)
	if e == nil {
		var zero P
		return zero, false
	}
	return e.props, true
}

func mutablePropertiesOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], id model.ObjectId,
) (*P, Transaction) {
	e := c.get(id)
	if e == nil {
		return nil, nullTransaction{}
	}
	tx := &propsTx[P]{s: s, id: id, live: &e.props, clone: e.props}
	return &tx.clone, tx
}

func settingsOf[P comparable, F comparable, U slice.Record, C command[F]](
	c *collection[P, F, U, C], id model.ObjectId,
) (F, bool) {
	e := c.get(id)
	if e == nil {
		var zero F
		return zero, false
	}
	return e.prefs, true
}

func mutableSettingsOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], id model.ObjectId,
) (*F, Transaction) {
	e := c.get(id)
	if e == nil {
		return nil, nullTransaction{}
	}
	tx := &settingsTx[F]{
		s:       s,
		id:      id,
		live:    &e.prefs,
		clone:   e.prefs,
		common:  c.common,
		relimit: func() { c.dataLimit(e) },
	}
	return &tx.clone, tx
}

func addUpdateOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], id model.ObjectId, u U,
) Transaction {
	e := c.get(id)
	if e == nil {
		return nullTransaction{}
	}
	return &updateTx{
		s:       s,
		id:      id,
		time:    u.RecordTime(),
		insert:  func() { e.updates.Insert(u) },
		relimit: func() { c.dataLimit(e) },
	}
}

func addCommandOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], id model.ObjectId, cmd C,
) Transaction {
	e := c.get(id)
	if e == nil {
		return nullTransaction{}
	}
	return &updateTx{
		s:       s,
		id:      id,
		time:    cmd.RecordTime(),
		insert:  func() { e.commands.Insert(cmd) },
		relimit: func() { c.dataLimit(e) },
	}
}

// AddPlatform opens a new-entry transaction for a platform. The returned
// properties carry the freshly allocated id; mutate them before Commit.
func (s *Store) AddPlatform() (*model.PlatformProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.platforms, model.PlatformProperties{Id: id}, id, s.defaultPlatformPrefs)
	return &e.props, tx
}

// AddBeam opens a new-entry transaction for a beam. Set HostId before
// Commit.
func (s *Store) AddBeam() (*model.BeamProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.beams, model.BeamProperties{Id: id}, id, s.defaultBeamPrefs)
	return &e.props, tx
}

// AddGate opens a new-entry transaction for a gate.
func (s *Store) AddGate() (*model.GateProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.gates, model.GateProperties{Id: id}, id, s.defaultGatePrefs)
	return &e.props, tx
}

// AddLaser opens a new-entry transaction for a laser.
func (s *Store) AddLaser() (*model.LaserProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.lasers, model.LaserProperties{Id: id}, id, s.defaultLaserPrefs)
	return &e.props, tx
}

// AddProjector opens a new-entry transaction for a projector.
func (s *Store) AddProjector() (*model.ProjectorProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.projectors, model.ProjectorProperties{Id: id}, id, s.defaultProjectorPrefs)
	return &e.props, tx
}

// AddLobGroup opens a new-entry transaction for a line-of-bearing group.
func (s *Store) AddLobGroup() (*model.LobGroupProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.lobGroups, model.LobGroupProperties{Id: id}, id, s.defaultLobGroupPrefs)
	return &e.props, tx
}

// AddCustomRendering opens a new-entry transaction for a custom rendering.
func (s *Store) AddCustomRendering() (*model.CustomRenderingProperties, Transaction) {
	id := s.genUniqueId()
	e, tx := newEntityOf(s, s.customRenderings, model.CustomRenderingProperties{Id: id}, id, s.defaultCustomRenderingPrefs)
	return &e.props, tx
}

// ObjectType classifies an id, returning NoneType for unknown ids and for
// the scenario id.
func (s *Store) ObjectType(id model.ObjectId) model.ObjectType {
	switch {
	case s.platforms.get(id) != nil:
		return model.PlatformType
	case s.beams.get(id) != nil:
		return model.BeamType
	case s.gates.get(id) != nil:
		return model.GateType
	case s.lasers.get(id) != nil:
		return model.LaserType
	case s.projectors.get(id) != nil:
		return model.ProjectorType
	case s.lobGroups.get(id) != nil:
		return model.LobGroupType
	case s.customRenderings.get(id) != nil:
		return model.CustomRenderingType
	}
	return model.NoneType
}

// IDList returns the ids of every entity whose kind is in mask, insertion
// order per kind, concatenated in the fixed kind order.
func (s *Store) IDList(mask model.ObjectType) []model.ObjectId {
	var out []model.ObjectId
	for _, kind := range model.KindOrder() {
		if !mask.Has(kind) {
			continue
		}
		out = append(out, s.collectionIDs(kind)...)
	}
	return out
}

func (s *Store) collectionIDs(kind model.ObjectType) []model.ObjectId {
	switch kind {
	case model.PlatformType:
		return s.platforms.ids()
	case model.BeamType:
		return s.beams.ids()
	case model.GateType:
		return s.gates.ids()
	case model.LaserType:
		return s.lasers.ids()
	case model.ProjectorType:
		return s.projectors.ids()
	case model.LobGroupType:
		return s.lobGroups.ids()
	case model.CustomRenderingType:
		return s.customRenderings.ids()
	}
	return nil
}

// IDsByName returns the ids registered under an exact name, filtered by
// kind mask.
func (s *Store) IDsByName(name string, mask model.ObjectType) []model.ObjectId {
	return s.nameCache.IDs(name, mask)
}

// IDsByOriginalID returns the ids whose caller-supplied original id matches,
// filtered by kind mask, in fixed kind order.
func (s *Store) IDsByOriginalID(originalId uint64, mask model.ObjectType) []model.ObjectId {
	var out []model.ObjectId
	for _, kind := range model.KindOrder() {
		if !mask.Has(kind) {
			continue
		}
		switch kind {
		case model.PlatformType:
			out = append(out, s.platforms.idsByOriginalId(originalId)...)
		case model.BeamType:
			out = append(out, s.beams.idsByOriginalId(originalId)...)
		case model.GateType:
			out = append(out, s.gates.idsByOriginalId(originalId)...)
		case model.LaserType:
			out = append(out, s.lasers.idsByOriginalId(originalId)...)
		case model.ProjectorType:
			out = append(out, s.projectors.idsByOriginalId(originalId)...)
		case model.LobGroupType:
			out = append(out, s.lobGroups.idsByOriginalId(originalId)...)
		case model.CustomRenderingType:
			out = append(out, s.customRenderings.idsByOriginalId(originalId)...)
		}
	}
	return out
}

// BeamIDsForHost returns the beams hosted on a platform.
func (s *Store) BeamIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.beams.idsForHost(hostId)
}

// GateIDsForHost returns the gates hosted on a beam.
func (s *Store) GateIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.gates.idsForHost(hostId)
}

// LaserIDsForHost returns the lasers hosted on a platform.
func (s *Store) LaserIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.lasers.idsForHost(hostId)
}

// ProjectorIDsForHost returns the projectors hosted on a platform or beam.
func (s *Store) ProjectorIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.projectors.idsForHost(hostId)
}

// LobGroupIDsForHost returns the line-of-bearing groups hosted on a
// platform.
func (s *Store) LobGroupIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.lobGroups.idsForHost(hostId)
}

// CustomRenderingIDsForHost returns the custom renderings hosted on a
// platform.
func (s *Store) CustomRenderingIDsForHost(hostId model.ObjectId) []model.ObjectId {
	return s.customRenderings.idsForHost(hostId)
}

// EntityHostID returns the host of an entity, 0 for platforms and unknown
// ids.
func (s *Store) EntityHostID(id model.ObjectId) model.ObjectId {
	switch s.ObjectType(id) {
	case model.BeamType:
		return s.beams.get(id).props.HostId
	case model.GateType:
		return s.gates.get(id).props.HostId
	case model.LaserType:
		return s.lasers.get(id).props.HostId
	case model.ProjectorType:
		return s.projectors.get(id).props.HostId
	case model.LobGroupType:
		return s.lobGroups.get(id).props.HostId
	case model.CustomRenderingType:
		return s.customRenderings.get(id).props.HostId
	}
	return 0
}

// RemoveEntity removes an entity and, transitively, every entity hosted on
// it. Removing an unknown id is a silent no-op. Listeners see
// OnRemoveEntity before anything is torn down and OnPostRemoveEntity after,
// per removed entity.
func (s *Store) RemoveEntity(id model.ObjectId) {
	s.removeEntityInternal(id, true)
}

func (s *Store) removeEntityInternal(id model.ObjectId, notify bool) {
	kind := s.ObjectType(id)
	if kind == model.NoneType {
		return
	}
	if notify {
		s.fanout(func(l Listener) { l.OnRemoveEntity(s, id, kind) })
	}

	switch kind {
	case model.PlatformType:
		for _, child := range s.beams.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
		for _, child := range s.lasers.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
		for _, child := range s.projectors.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
		for _, child := range s.lobGroups.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
		for _, child := range s.customRenderings.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
	case model.BeamType:
		for _, child := range s.gates.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
		for _, child := range s.projectors.idsForHost(id) {
			s.removeEntityInternal(child, notify)
		}
	}

	// release the shared indexes; the entry owns the slices and drops with it
	delete(s.genericData, id)
	delete(s.categoryData, id)
	s.tables.DeleteTablesByOwner(id)

	switch kind {
	case model.PlatformType:
		s.nameCache.Remove(s.platforms.get(id).prefs.Name, id)
		s.platforms.remove(id)
	case model.BeamType:
		s.nameCache.Remove(s.beams.get(id).prefs.Name, id)
		s.beams.remove(id)
	case model.GateType:
		s.nameCache.Remove(s.gates.get(id).prefs.Name, id)
		s.gates.remove(id)
	case model.LaserType:
		s.nameCache.Remove(s.lasers.get(id).prefs.Name, id)
		s.lasers.remove(id)
	case model.ProjectorType:
		s.nameCache.Remove(s.projectors.get(id).prefs.Name, id)
		s.projectors.remove(id)
	case model.LobGroupType:
		s.nameCache.Remove(s.lobGroups.get(id).prefs.Name, id)
		s.lobGroups.remove(id)
	case model.CustomRenderingType:
		s.nameCache.Remove(s.customRenderings.get(id).prefs.Name, id)
		s.customRenderings.remove(id)
	}

	s.hasChanged = true
	if notify {
		s.log.Debug("entity removed",
			logging.Uint64("id", uint64(id)),
			logging.String("kind", kind.String()))
		s.updateMetrics()
		s.fanout(func(l Listener) { l.OnPostRemoveEntity(s, id, kind) })
	}
}

// Per-kind properties accessors. Read accessors return a value copy plus a
// found flag; mutable accessors return a clone to mutate plus its
// transaction.

func (s *Store) PlatformProperties(id model.ObjectId) (model.PlatformProperties, bool) {
	return propertiesOf(s.platforms, id)
}

func (s *Store) MutablePlatformProperties(id model.ObjectId) (*model.PlatformProperties, Transaction) {
	return mutablePropertiesOf(s, s.platforms, id)
}

func (s *Store) BeamProperties(id model.ObjectId) (model.BeamProperties, bool) {
	return propertiesOf(s.beams, id)
}

func (s *Store) MutableBeamProperties(id model.ObjectId) (*model.BeamProperties, Transaction) {
	return mutablePropertiesOf(s, s.beams, id)
}

func (s *Store) GateProperties(id model.ObjectId) (model.GateProperties, bool) {
	return propertiesOf(s.gates, id)
}

func (s *Store) MutableGateProperties(id model.ObjectId) (*model.GateProperties, Transaction) {
	return mutablePropertiesOf(s, s.gates, id)
}

func (s *Store) LaserProperties(id model.ObjectId) (model.LaserProperties, bool) {
	return propertiesOf(s.lasers, id)
}

func (s *Store) MutableLaserProperties(id model.ObjectId) (*model.LaserProperties, Transaction) {
	return mutablePropertiesOf(s, s.lasers, id)
}

func (s *Store) ProjectorProperties(id model.ObjectId) (model.ProjectorProperties, bool) {
	return propertiesOf(s.projectors, id)
}

func (s *Store) MutableProjectorProperties(id model.ObjectId) (*model.ProjectorProperties, Transaction) {
	return mutablePropertiesOf(s, s.projectors, id)
}

func (s *Store) LobGroupProperties(id model.ObjectId) (model.LobGroupProperties, bool) {
	return propertiesOf(s.lobGroups, id)
}

func (s *Store) MutableLobGroupProperties(id model.ObjectId) (*model.LobGroupProperties, Transaction) {
	return mutablePropertiesOf(s, s.lobGroups, id)
}

func (s *Store) CustomRenderingProperties(id model.ObjectId) (model.CustomRenderingProperties, bool) {
	return propertiesOf(s.customRenderings, id)
}

func (s *Store) MutableCustomRenderingProperties(id model.ObjectId) (*model.CustomRenderingProperties, Transaction) {
	return mutablePropertiesOf(s, s.customRenderings, id)
}

// Per-kind preferences accessors.

func (s *Store) PlatformPrefs(id model.ObjectId) (model.PlatformPrefs, bool) {
	return settingsOf(s.platforms, id)
}

func (s *Store) MutablePlatformPrefs(id model.ObjectId) (*model.PlatformPrefs, Transaction) {
	return mutableSettingsOf(s, s.platforms, id)
}

func (s *Store) BeamPrefs(id model.ObjectId) (model.BeamPrefs, bool) {
	return settingsOf(s.beams, id)
}

func (s *Store) MutableBeamPrefs(id model.ObjectId) (*model.BeamPrefs, Transaction) {
	return mutableSettingsOf(s, s.beams, id)
}

func (s *Store) GatePrefs(id model.ObjectId) (model.GatePrefs, bool) {
	return settingsOf(s.gates, id)
}

func (s *Store) MutableGatePrefs(id model.ObjectId) (*model.GatePrefs, Transaction) {
	return mutableSettingsOf(s, s.gates, id)
}

func (s *Store) LaserPrefs(id model.ObjectId) (model.LaserPrefs, bool) {
	return settingsOf(s.lasers, id)
}

func (s *Store) MutableLaserPrefs(id model.ObjectId) (*model.LaserPrefs, Transaction) {
	return mutableSettingsOf(s, s.lasers, id)
}

func (s *Store) ProjectorPrefs(id model.ObjectId) (model.ProjectorPrefs, bool) {
	return settingsOf(s.projectors, id)
}

func (s *Store) MutableProjectorPrefs(id model.ObjectId) (*model.ProjectorPrefs, Transaction) {
	return mutableSettingsOf(s, s.projectors, id)
}

func (s *Store) LobGroupPrefs(id model.ObjectId) (model.LobGroupPrefs, bool) {
	return settingsOf(s.lobGroups, id)
}

func (s *Store) MutableLobGroupPrefs(id model.ObjectId) (*model.LobGroupPrefs, Transaction) {
	return mutableSettingsOf(s, s.lobGroups, id)
}

func (s *Store) CustomRenderingPrefs(id model.ObjectId) (model.CustomRenderingPrefs, bool) {
	return settingsOf(s.customRenderings, id)
}

func (s *Store) MutableCustomRenderingPrefs(id model.ObjectId) (*model.CustomRenderingPrefs, Transaction) {
	return mutableSettingsOf(s, s.customRenderings, id)
}

// CommonPrefs returns the shared preferences block of any entity kind.
func (s *Store) CommonPrefs(id model.ObjectId) (model.CommonPrefs, bool) {
	switch s.ObjectType(id) {
	case model.PlatformType:
		return s.platforms.get(id).prefs.CommonPrefs, true
	case model.BeamType:
		return s.beams.get(id).prefs.CommonPrefs, true
	case model.GateType:
		return s.gates.get(id).prefs.CommonPrefs, true
	case model.LaserType:
		return s.lasers.get(id).prefs.CommonPrefs, true
	case model.ProjectorType:
		return s.projectors.get(id).prefs.CommonPrefs, true
	case model.LobGroupType:
		return s.lobGroups.get(id).prefs.CommonPrefs, true
	case model.CustomRenderingType:
		return s.customRenderings.get(id).prefs.CommonPrefs, true
	}
	return model.CommonPrefs{}, false
}

// MutableCommonPrefs opens a preferences transaction exposing only the
// shared block, for callers that do not care about the entity kind.
func (s *Store) MutableCommonPrefs(id model.ObjectId) (*model.CommonPrefs, Transaction) {
	switch s.ObjectType(id) {
	case model.PlatformType:
		return mutableCommonOf(s, s.platforms, id)
	case model.BeamType:
		return mutableCommonOf(s, s.beams, id)
	case model.GateType:
		return mutableCommonOf(s, s.gates, id)
	case model.LaserType:
		return mutableCommonOf(s, s.lasers, id)
	case model.ProjectorType:
		return mutableCommonOf(s, s.projectors, id)
	case model.LobGroupType:
		return mutableCommonOf(s, s.lobGroups, id)
	case model.CustomRenderingType:
		return mutableCommonOf(s, s.customRenderings, id)
	}
	return nil, nullTransaction{}
}

func mutableCommonOf[P comparable, F comparable, U slice.Record, C command[F]](
	s *Store, c *collection[P, F, U, C], id model.ObjectId,
) (*model.CommonPrefs, Transaction) {
	clone, tx := mutableSettingsOf(s, c, id)
	if clone == nil {
		return nil, tx
	}
	return c.common(clone), tx
}

// Per-kind update and command insert transactions. Unknown ids hand back a
// null transaction.

func (s *Store) AddPlatformUpdate(id model.ObjectId, u model.PlatformUpdate) Transaction {
	return addUpdateOf(s, s.platforms, id, u)
}

func (s *Store) AddBeamUpdate(id model.ObjectId, u model.BeamUpdate) Transaction {
	return addUpdateOf(s, s.beams, id, u)
}

func (s *Store) AddGateUpdate(id model.ObjectId, u model.GateUpdate) Transaction {
	return addUpdateOf(s, s.gates, id, u)
}

func (s *Store) AddLaserUpdate(id model.ObjectId, u model.LaserUpdate) Transaction {
	return addUpdateOf(s, s.lasers, id, u)
}

func (s *Store) AddProjectorUpdate(id model.ObjectId, u model.ProjectorUpdate) Transaction {
	return addUpdateOf(s, s.projectors, id, u)
}

func (s *Store) AddLobGroupUpdate(id model.ObjectId, u model.LobGroupUpdate) Transaction {
	return addUpdateOf(s, s.lobGroups, id, u)
}

func (s *Store) AddCustomRenderingUpdate(id model.ObjectId, u model.CustomRenderingUpdate) Transaction {
	return addUpdateOf(s, s.customRenderings, id, u)
}

func (s *Store) AddPlatformCommand(id model.ObjectId, c model.PlatformCommand) Transaction {
	return addCommandOf(s, s.platforms, id, c)
}

func (s *Store) AddBeamCommand(id model.ObjectId, c model.BeamCommand) Transaction {
	return addCommandOf(s, s.beams, id, c)
}

func (s *Store) AddGateCommand(id model.ObjectId, c model.GateCommand) Transaction {
	return addCommandOf(s, s.gates, id, c)
}

func (s *Store) AddLaserCommand(id model.ObjectId, c model.LaserCommand) Transaction {
	return addCommandOf(s, s.lasers, id, c)
}

func (s *Store) AddProjectorCommand(id model.ObjectId, c model.ProjectorCommand) Transaction {
	return addCommandOf(s, s.projectors, id, c)
}

func (s *Store) AddLobGroupCommand(id model.ObjectId, c model.LobGroupCommand) Transaction {
	return addCommandOf(s, s.lobGroups, id, c)
}

func (s *Store) AddCustomRenderingCommand(id model.ObjectId, c model.CustomRenderingCommand) Transaction {
	return addCommandOf(s, s.customRenderings, id, c)
}

// AddGenericData opens an insert transaction for one tagged data sample.
// Id 0 targets scenario-global data. While live limiting is active and the
// scenario ignores duplicates, a sample equal to its predecessor is dropped
// at commit.
func (s *Store) AddGenericData(id model.ObjectId, d model.GenericData) Transaction {
	series := s.genericData[id]
	if series == nil {
		return nullTransaction{}
	}
	return &updateTx{
		s:    s,
		id:   id,
		time: d.Time,
		insert: func() {
			ignoreDup := s.props.IgnoreDuplicateGenericData && s.dataLimiting
			series.Insert(d, ignoreDup)
		},
		relimit: func() { series.LimitByPrefs(s.entityLimits(id)) },
	}
}

// AddCategoryData opens an insert transaction for one category sample. Name
// and Value must be interned ints from the category manager.
func (s *Store) AddCategoryData(id model.ObjectId, d model.CategoryData) Transaction {
	series := s.categoryData[id]
	if series == nil {
		return nullTransaction{}
	}
	return &updateTx{
		s:       s,
		id:      id,
		time:    d.Time,
		insert:  func() { series.Insert(d) },
		relimit: func() { series.LimitByPrefs(s.entityLimits(id)) },
	}
}

// RemoveGenericDataTag drops every sample under one tag for an entity,
// returning the number removed.
func (s *Store) RemoveGenericDataTag(id model.ObjectId, tag string) int {
	series := s.genericData[id]
	if series == nil {
		return 0
	}
	n := series.RemoveTag(tag)
	if n > 0 {
		s.hasChanged = true
	}
	return n
}

// RemoveCategoryDataPoint removes the sample at exactly (time, name, value),
// reporting whether one was found.
func (s *Store) RemoveCategoryDataPoint(id model.ObjectId, time float64, name, value int) bool {
	series := s.categoryData[id]
	if series == nil {
		return false
	}
	if !series.RemovePoint(time, name, value) {
		return false
	}
	s.hasChanged = true
	return true
}

// entityLimits resolves the retention thresholds governing an id: the
// scenario properties for id 0, the entity's common preferences otherwise.
func (s *Store) entityLimits(id model.ObjectId) slice.CommonLimits {
	if id == model.ScenarioId {
		return slice.CommonLimits{
			MaxPoints:  s.props.DataLimitPoints,
			MaxSeconds: s.props.DataLimitSeconds,
		}
	}
	cp, ok := s.CommonPrefs(id)
	if !ok {
		return slice.CommonLimits{}
	}
	return slice.CommonLimits{MaxPoints: cp.DataLimitPoints, MaxSeconds: cp.DataLimitSeconds}
}

// Read-only slice accessors for renderers and recorders. Callers must not
// mutate through them; ownership stays with the registry.

func (s *Store) PlatformUpdateSlice(id model.ObjectId) *slice.Series[model.PlatformUpdate] {
	if e := s.platforms.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) BeamUpdateSlice(id model.ObjectId) *slice.Series[model.BeamUpdate] {
	if e := s.beams.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) GateUpdateSlice(id model.ObjectId) *slice.Series[model.GateUpdate] {
	if e := s.gates.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) LaserUpdateSlice(id model.ObjectId) *slice.Series[model.LaserUpdate] {
	if e := s.lasers.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) ProjectorUpdateSlice(id model.ObjectId) *slice.Series[model.ProjectorUpdate] {
	if e := s.projectors.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) LobGroupUpdateSlice(id model.ObjectId) *slice.Series[model.LobGroupUpdate] {
	if e := s.lobGroups.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) CustomRenderingUpdateSlice(id model.ObjectId) *slice.Series[model.CustomRenderingUpdate] {
	if e := s.customRenderings.get(id); e != nil {
		return e.updates
	}
	return nil
}

func (s *Store) PlatformCommandSlice(id model.ObjectId) *slice.Commands[model.PlatformCommand] {
	if e := s.platforms.get(id); e != nil {
		return e.commands
	}
	return nil
}

func (s *Store) BeamCommandSlice(id model.ObjectId) *slice.Commands[model.BeamCommand] {
	if e := s.beams.get(id); e != nil {
		return e.commands
	}
	return nil
}

func (s *Store) GateCommandSlice(id model.ObjectId) *slice.Commands[model.GateCommand] {
	if e := s.gates.get(id); e != nil {
		return e.commands
	}
	return nil
}

func (s *Store) GenericDataSlice(id model.ObjectId) *slice.GenericSeries {
	return s.genericData[id]
}

func (s *Store) CategoryDataSlice(id model.ObjectId) *slice.CategorySeries {
	return s.categoryData[id]
}
