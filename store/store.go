// Package store implements the in-memory scenario data store: the
// authoritative, mutable record of all simulated entities, their
// configuration, and their time-stamped histories, plus the transaction and
// notification protocol that keeps renderers, UIs, and recorders consistent
// as the simulated clock advances.
//
// The store is single-threaded by design: it performs no internal locking
// and assumes one logical thread serialises all mutation and advance calls.
// Listener callbacks may re-enter the store.
package store

import (
	"github.com/signalsfoundry/simstore/internal/category"
	"github.com/signalsfoundry/simstore/internal/logging"
	"github.com/signalsfoundry/simstore/internal/namecache"
	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/slice"
	"github.com/signalsfoundry/simstore/timectrl"
)

// Per-kind instantiations of the generic entry machinery.
type (
	platformEntry        = entry[model.PlatformProperties, model.PlatformPrefs, model.PlatformUpdate, model.PlatformCommand]
	beamEntry            = entry[model.BeamProperties, model.BeamPrefs, model.BeamUpdate, model.BeamCommand]
	gateEntry            = entry[model.GateProperties, model.GatePrefs, model.GateUpdate, model.GateCommand]
	laserEntry           = entry[model.LaserProperties, model.LaserPrefs, model.LaserUpdate, model.LaserCommand]
	projectorEntry       = entry[model.ProjectorProperties, model.ProjectorPrefs, model.ProjectorUpdate, model.ProjectorCommand]
	lobGroupEntry        = entry[model.LobGroupProperties, model.LobGroupPrefs, model.LobGroupUpdate, model.LobGroupCommand]
	customRenderingEntry = entry[model.CustomRenderingProperties, model.CustomRenderingPrefs, model.CustomRenderingUpdate, model.CustomRenderingCommand]

	platformCollection        = collection[model.PlatformProperties, model.PlatformPrefs, model.PlatformUpdate, model.PlatformCommand]
	beamCollection            = collection[model.BeamProperties, model.BeamPrefs, model.BeamUpdate, model.BeamCommand]
	gateCollection            = collection[model.GateProperties, model.GatePrefs, model.GateUpdate, model.GateCommand]
	laserCollection           = collection[model.LaserProperties, model.LaserPrefs, model.LaserUpdate, model.LaserCommand]
	projectorCollection       = collection[model.ProjectorProperties, model.ProjectorPrefs, model.ProjectorUpdate, model.ProjectorCommand]
	lobGroupCollection        = collection[model.LobGroupProperties, model.LobGroupPrefs, model.LobGroupUpdate, model.LobGroupCommand]
	customRenderingCollection = collection[model.CustomRenderingProperties, model.CustomRenderingPrefs, model.CustomRenderingUpdate, model.CustomRenderingCommand]
)

// EntityCounts carries current per-kind populations for metrics recorders.
type EntityCounts struct {
	Platforms        int
	Beams            int
	Gates            int
	Lasers           int
	Projectors       int
	LobGroups        int
	CustomRenderings int
}

// StoreMetricsRecorder receives store activity for Prometheus-friendly
// gauges and counters.
type StoreMetricsRecorder interface {
	SetEntityCounts(counts EntityCounts)
	ObserveAdvance(seconds float64)
	IncFlushes()
}

// Store is the in-memory scenario data store.
type Store struct {
	baseId model.ObjectId
	props  model.ScenarioProperties

	platforms        *platformCollection
	beams            *beamCollection
	gates            *gateCollection
	lasers           *laserCollection
	projectors       *projectorCollection
	lobGroups        *lobGroupCollection
	customRenderings *customRenderingCollection

	// flat id-keyed indexes over the per-entity sparse slices; the entries
	// own the slices, these maps only enable O(1) independent lookup.
	// Scenario-global generic data lives under id 0.
	genericData  map[model.ObjectId]*slice.GenericSeries
	categoryData map[model.ObjectId]*slice.CategorySeries

	defaultPlatformPrefs        model.PlatformPrefs
	defaultBeamPrefs            model.BeamPrefs
	defaultGatePrefs            model.GatePrefs
	defaultLaserPrefs           model.LaserPrefs
	defaultProjectorPrefs       model.ProjectorPrefs
	defaultLobGroupPrefs        model.LobGroupPrefs
	defaultCustomRenderingPrefs model.CustomRenderingPrefs

	interpolator         Interpolator
	interpolationEnabled bool

	listeners         []Listener
	justRemoved       []Listener
	scenarioListeners []ScenarioListener
	newUpdates        NewUpdatesListener

	hasChanged     bool
	lastUpdateTime float64
	dataLimiting   bool
	boundClock     timectrl.Clock

	nameCache  *namecache.Cache
	categories *category.Manager
	tables     *TableManager

	log     logging.Logger
	metrics StoreMetricsRecorder
}

// Option customises Store construction.
type Option func(*Store)

// WithLogger attaches a structured logger for store-level events.
func WithLogger(log logging.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetricsRecorder attaches an optional recorder for entity counts and
// store activity.
func WithMetricsRecorder(m StoreMetricsRecorder) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// New constructs an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		platforms: newCollection[model.PlatformProperties, model.PlatformPrefs, model.PlatformUpdate, model.PlatformCommand](
			model.PlatformType,
			func(model.PlatformProperties) model.ObjectId { return 0 },
			func(f *model.PlatformPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.PlatformProperties) uint64 { return p.OriginalId },
		),
		beams: newCollection[model.BeamProperties, model.BeamPrefs, model.BeamUpdate, model.BeamCommand](
			model.BeamType,
			func(p model.BeamProperties) model.ObjectId { return p.HostId },
			func(f *model.BeamPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.BeamProperties) uint64 { return p.OriginalId },
		),
		gates: newCollection[model.GateProperties, model.GatePrefs, model.GateUpdate, model.GateCommand](
			model.GateType,
			func(p model.GateProperties) model.ObjectId { return p.HostId },
			func(f *model.GatePrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.GateProperties) uint64 { return p.OriginalId },
		),
		lasers: newCollection[model.LaserProperties, model.LaserPrefs, model.LaserUpdate, model.LaserCommand](
			model.LaserType,
			func(p model.LaserProperties) model.ObjectId { return p.HostId },
			func(f *model.LaserPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.LaserProperties) uint64 { return p.OriginalId },
		),
		projectors: newCollection[model.ProjectorProperties, model.ProjectorPrefs, model.ProjectorUpdate, model.ProjectorCommand](
			model.ProjectorType,
			func(p model.ProjectorProperties) model.ObjectId { return p.HostId },
			func(f *model.ProjectorPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.ProjectorProperties) uint64 { return p.OriginalId },
		),
		lobGroups: newCollection[model.LobGroupProperties, model.LobGroupPrefs, model.LobGroupUpdate, model.LobGroupCommand](
			model.LobGroupType,
			func(p model.LobGroupProperties) model.ObjectId { return p.HostId },
			func(f *model.LobGroupPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.LobGroupProperties) uint64 { return p.OriginalId },
		),
		customRenderings: newCollection[model.CustomRenderingProperties, model.CustomRenderingPrefs, model.CustomRenderingUpdate, model.CustomRenderingCommand](
			model.CustomRenderingType,
			func(p model.CustomRenderingProperties) model.ObjectId { return p.HostId },
			func(f *model.CustomRenderingPrefs) *model.CommonPrefs { return &f.CommonPrefs },
			func(p model.CustomRenderingProperties) uint64 { return p.OriginalId },
		),
		genericData:  make(map[model.ObjectId]*slice.GenericSeries),
		categoryData: make(map[model.ObjectId]*slice.CategorySeries),
		newUpdates:   noopNewUpdatesListener{},
		nameCache:    namecache.New(),
		categories:   category.NewManager(),
		tables:       NewTableManager(),
		log:          logging.Noop(),
	}
	s.genericData[model.ScenarioId] = slice.NewGenericSeries()
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// genUniqueId allocates the next entity id. Ids are never reused.
func (s *Store) genUniqueId() model.ObjectId {
	s.baseId++
	return s.baseId
}

// SetDefaultPrefs installs the preferences assigned to newly created
// entities of each kind. Custom renderings always start from zero-value
// prefs.
func (s *Store) SetDefaultPrefs(
	platform model.PlatformPrefs,
	beam model.BeamPrefs,
	gate model.GatePrefs,
	laser model.LaserPrefs,
	lob model.LobGroupPrefs,
	projector model.ProjectorPrefs,
) {
	s.defaultPlatformPrefs = platform
	s.defaultBeamPrefs = beam
	s.defaultGatePrefs = gate
	s.defaultLaserPrefs = laser
	s.defaultLobGroupPrefs = lob
	s.defaultProjectorPrefs = projector
	s.defaultCustomRenderingPrefs = model.CustomRenderingPrefs{}
}

// SetDefaultPlatformPrefs installs only the platform default preferences.
func (s *Store) SetDefaultPlatformPrefs(prefs model.PlatformPrefs) {
	s.defaultPlatformPrefs = prefs
}

// DefaultPlatformPrefs returns the current platform default preferences.
func (s *Store) DefaultPlatformPrefs() model.PlatformPrefs {
	return s.defaultPlatformPrefs
}

// CanInterpolate reports whether this store supports interpolated updates.
func (s *Store) CanInterpolate() bool { return true }

// SetInterpolator registers the interpolator used for position/state
// interpolation during advances.
func (s *Store) SetInterpolator(interp Interpolator) {
	if s.interpolator != interp {
		s.interpolator = interp
		s.hasChanged = true
	}
}

// Interpolator returns the registered interpolator when interpolation is
// enabled, else nil.
func (s *Store) Interpolator() Interpolator {
	if s.interpolationEnabled {
		return s.interpolator
	}
	return nil
}

// EnableInterpolation toggles interpolation. Enabling without a registered
// interpolator is not an error; it simply has no effect. The resulting state
// is returned.
func (s *Store) EnableInterpolation(state bool) bool {
	if state && s.interpolator != nil {
		if !s.interpolationEnabled {
			s.interpolationEnabled = true
			s.hasChanged = true
		}
	} else if s.interpolationEnabled {
		s.interpolationEnabled = false
		s.hasChanged = true
	}
	return s.interpolationEnabled
}

// IsInterpolationEnabled reports whether interpolation is enabled and an
// interpolator is registered.
func (s *Store) IsInterpolationEnabled() bool {
	return s.interpolationEnabled && s.interpolator != nil
}

// BindClock selects live-vs-file-replay semantics for advances. A nil clock
// restores the default file-replay behaviour.
func (s *Store) BindClock(clock timectrl.Clock) {
	s.boundClock = clock
}

// BoundClock returns the bound clock, or nil.
func (s *Store) BoundClock() timectrl.Clock { return s.boundClock }

// UpdateTime returns the last advanced scenario time.
func (s *Store) UpdateTime() float64 { return s.lastUpdateTime }

// ReferenceYear returns the scenario reference year.
func (s *Store) ReferenceYear() int { return s.props.ReferenceYear }

// SetDataLimiting toggles scenario-wide bounded retention. While enabled,
// every committed insert re-applies the owning entity's retention policy.
func (s *Store) SetDataLimiting(limiting bool) { s.dataLimiting = limiting }

// DataLimiting reports whether scenario-wide retention is enabled.
func (s *Store) DataLimiting() bool { return s.dataLimiting }

// CategoryNameManager exposes the category name/value interner.
func (s *Store) CategoryNameManager() *category.Manager { return s.categories }

// DataTableManager exposes the data-table owner index.
func (s *Store) DataTableManager() *TableManager { return s.tables }

// TimeBounds returns the earliest-first and latest-last record time across
// one entity's update and command history. Id 0 reports bounds across the
// whole platform population. Unknown ids report (-1, -1).
func (s *Store) TimeBounds(id model.ObjectId) (float64, float64) {
	if id == model.ScenarioId {
		return s.platformTimeBounds()
	}
	switch s.ObjectType(id) {
	case model.PlatformType:
		return s.platforms.timeBounds(s.platforms.get(id))
	case model.BeamType:
		return s.beams.timeBounds(s.beams.get(id))
	case model.GateType:
		return s.gates.timeBounds(s.gates.get(id))
	case model.LaserType:
		return s.lasers.timeBounds(s.lasers.get(id))
	case model.ProjectorType:
		return s.projectors.timeBounds(s.projectors.get(id))
	case model.LobGroupType:
		return s.lobGroups.timeBounds(s.lobGroups.get(id))
	case model.CustomRenderingType:
		return s.customRenderings.timeBounds(s.customRenderings.get(id))
	}
	return -1, -1
}

// platformTimeBounds spans the recorded updates of every non-static
// platform.
func (s *Store) platformTimeBounds() (float64, float64) {
	first, last := -1.0, -1.0
	for _, id := range s.platforms.order {
		updates := s.platforms.get(id).updates
		if updates.NumItems() == 0 || updates.FirstTime() < 0 {
			continue
		}
		first = minTime(first, updates.FirstTime())
		last = maxTime(last, updates.LastTime())
	}
	return first, last
}

// Clear wipes every entity, history, and interned category, notifying
// listeners once via OnScenarioDelete before the wipe.
func (s *Store) Clear() {
	s.fanout(func(l Listener) { l.OnScenarioDelete(s) })

	s.log.Debug("clearing scenario",
		logging.Int("platforms", s.platforms.len()),
		logging.Int("beams", s.beams.len()),
		logging.Int("gates", s.gates.len()),
		logging.Int("lasers", s.lasers.len()),
		logging.Int("projectors", s.projectors.len()),
		logging.Int("lobgroups", s.lobGroups.len()),
		logging.Int("customrenderings", s.customRenderings.len()),
	)

	// RemoveEntity handles descendants, slices, names, and tables; iterating
	// platforms first empties most of the tree.
	for _, id := range s.platforms.ids() {
		s.removeEntityInternal(id, false)
	}
	for _, kind := range []model.ObjectType{
		model.BeamType, model.GateType, model.LaserType, model.ProjectorType,
		model.LobGroupType, model.CustomRenderingType,
	} {
		for _, id := range s.IDList(kind) {
			s.removeEntityInternal(id, false)
		}
	}

	if g, ok := s.genericData[model.ScenarioId]; ok {
		g.Flush()
	}
	s.categories.Clear()
	s.nameCache.Clear()
	s.hasChanged = true
	s.updateMetrics()
}

// updateMetrics pushes current entity counts into the metrics recorder.
func (s *Store) updateMetrics() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetEntityCounts(EntityCounts{
		Platforms:        s.platforms.len(),
		Beams:            s.beams.len(),
		Gates:            s.gates.len(),
		Lasers:           s.lasers.len(),
		Projectors:       s.projectors.len(),
		LobGroups:        s.lobGroups.len(),
		CustomRenderings: s.customRenderings.len(),
	})
}
