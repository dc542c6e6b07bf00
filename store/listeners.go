package store

import "github.com/signalsfoundry/simstore/model"

// Listener observes store mutations. Implementations are registered in
// insertion order and may add or remove listeners (including themselves)
// from inside a callback; a listener removed mid-fan-out receives no further
// events from the in-flight pass.
type Listener interface {
	// OnAddEntity fires once when a new-entity transaction is released.
	OnAddEntity(s *Store, id model.ObjectId, kind model.ObjectType)
	// OnRemoveEntity fires before an entity and its descendants are removed.
	OnRemoveEntity(s *Store, id model.ObjectId, kind model.ObjectType)
	// OnPostRemoveEntity fires after an entity has been removed.
	OnPostRemoveEntity(s *Store, id model.ObjectId, kind model.ObjectType)
	// OnPropertiesChange fires when a properties transaction commits.
	OnPropertiesChange(s *Store, id model.ObjectId)
	// OnPrefsChange fires when a preferences transaction commits.
	OnPrefsChange(s *Store, id model.ObjectId)
	// OnNameChange fires when a committed preferences change altered the
	// entity's displayed identity: name text, active alias text, or the
	// alias-enabled flag.
	OnNameChange(s *Store, id model.ObjectId)
	// OnCategoryDataChange fires per entity whose category state moved
	// during an advance.
	OnCategoryDataChange(s *Store, id model.ObjectId, kind model.ObjectType)
	// OnChange fires once per effective advance.
	OnChange(s *Store)
	// OnFlush fires after a flush; id 0 indicates a scenario-wide flush.
	OnFlush(s *Store, id model.ObjectId)
	// OnScenarioDelete fires when the scenario is cleared.
	OnScenarioDelete(s *Store)
}

// BaseListener is a no-op Listener for embedding, so observers implement
// only the callbacks they care about.
type BaseListener struct{}

func (BaseListener) OnAddEntity(*Store, model.ObjectId, model.ObjectType)          {}
func (BaseListener) OnRemoveEntity(*Store, model.ObjectId, model.ObjectType)       {}
func (BaseListener) OnPostRemoveEntity(*Store, model.ObjectId, model.ObjectType)   {}
func (BaseListener) OnPropertiesChange(*Store, model.ObjectId)                     {}
func (BaseListener) OnPrefsChange(*Store, model.ObjectId)                          {}
func (BaseListener) OnNameChange(*Store, model.ObjectId)                           {}
func (BaseListener) OnCategoryDataChange(*Store, model.ObjectId, model.ObjectType) {}
func (BaseListener) OnChange(*Store)                                               {}
func (BaseListener) OnFlush(*Store, model.ObjectId)                                {}
func (BaseListener) OnScenarioDelete(*Store)                                       {}

// ScenarioListener observes scenario property commits.
type ScenarioListener interface {
	OnScenarioPropertiesChange(s *Store)
}

// NewUpdatesListener observes successful update inserts and flushes, for
// consumers (recorders) that track incoming data rather than entity state.
type NewUpdatesListener interface {
	OnEntityUpdate(s *Store, id model.ObjectId, time float64)
	OnNewUpdatesFlush(s *Store, id model.ObjectId)
}

type noopNewUpdatesListener struct{}

func (noopNewUpdatesListener) OnEntityUpdate(*Store, model.ObjectId, float64) {}
func (noopNewUpdatesListener) OnNewUpdatesFlush(*Store, model.ObjectId)       {}

// AddListener registers a listener at the end of the fan-out order.
func (s *Store) AddListener(l Listener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters a listener. The live list is mutated
// immediately and any in-flight fan-out pass tombstones the listener so it
// receives no further events from that pass.
func (s *Store) RemoveListener(l Listener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			s.justRemoved = append(s.justRemoved, l)
			return
		}
	}
}

// AddScenarioListener registers a scenario-properties listener.
func (s *Store) AddScenarioListener(l ScenarioListener) {
	if l == nil {
		return
	}
	s.scenarioListeners = append(s.scenarioListeners, l)
}

// RemoveScenarioListener unregisters a scenario-properties listener.
func (s *Store) RemoveScenarioListener(l ScenarioListener) {
	for i, existing := range s.scenarioListeners {
		if existing == l {
			s.scenarioListeners = append(s.scenarioListeners[:i], s.scenarioListeners[i+1:]...)
			return
		}
	}
}

// SetNewUpdatesListener installs the new-updates listener; nil restores the
// no-op default.
func (s *Store) SetNewUpdatesListener(l NewUpdatesListener) {
	if l == nil {
		s.newUpdates = noopNewUpdatesListener{}
		return
	}
	s.newUpdates = l
}

// fanout delivers one logical event to a snapshot of the listener list.
// Listeners removed during the pass are tombstoned in the snapshot so they
// are skipped for the remainder of the pass; the live list is unaffected by
// snapshotting and reflects removals immediately.
func (s *Store) fanout(fn func(Listener)) {
	local := make([]Listener, len(s.listeners))
	copy(local, s.listeners)
	s.justRemoved = s.justRemoved[:0]
	for i := range local {
		if local[i] == nil {
			continue
		}
		fn(local[i])
		s.checkForRemoval(local)
	}
}

// checkForRemoval tombstones snapshot entries matching listeners removed
// during the current callback.
func (s *Store) checkForRemoval(local []Listener) {
	if len(s.justRemoved) == 0 {
		return
	}
	for _, removed := range s.justRemoved {
		for i := range local {
			if local[i] == removed {
				local[i] = nil
			}
		}
	}
	s.justRemoved = s.justRemoved[:0]
}
