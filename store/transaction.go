package store

import "github.com/signalsfoundry/simstore/model"

// Transaction is a scoped copy-on-write mutation guard. Callers mutate the
// value handed out alongside the transaction, then Commit to apply and
// Release to fire notifications. A transaction that is released without a
// commit leaves the store unmodified and fires nothing. Commit is
// idempotent; each effective commit produces exactly one notification,
// delivered on Release.
//
// Two transactions open against the same record must not overlap; the store
// assumes one logical thread serialises all mutation.
type Transaction interface {
	Commit()
	Release()
}

// nullTransaction is handed out by accessors that resolved no record, so
// callers can unconditionally defer Release.
type nullTransaction struct{}

func (nullTransaction) Commit()  {}
func (nullTransaction) Release() {}

// newEntryTx binds a freshly allocated entity record into its owning
// collection on commit. A never-committed record is simply dropped; its id
// stays burnt (ids are never reused).
type newEntryTx struct {
	s    *Store
	id   model.ObjectId
	kind model.ObjectType

	install   func()
	committed bool
	notified  bool
}

func (t *newEntryTx) Commit() {
	if t.committed {
		return
	}
	t.committed = true
	t.install()
	t.s.hasChanged = true
}

func (t *newEntryTx) Release() {
	if !t.committed || t.notified {
		return
	}
	t.notified = true
	t.s.updateMetrics()
	t.s.fanout(func(l Listener) { l.OnAddEntity(t.s, t.id, t.kind) })
}

// settingsTx clones an entity's preferences and diff-copies the clone back
// on commit. Full-value equality decides whether anything happened; a commit
// with an untouched clone is a no-op. Name-change detection covers the
// displayed identity: name text, active alias, or the alias-enabled flag.
type settingsTx[F comparable] struct {
	s     *Store
	id    model.ObjectId
	live  *F
	clone F

	common  func(*F) *model.CommonPrefs
	relimit func()

	notifyPrefs bool
	notifyName  bool
	released    bool
}

func (t *settingsTx[F]) Commit() {
	if t.clone == *t.live {
		return
	}
	oldCommon := *t.common(t.live)
	newCommon := *t.common(&t.clone)
	if oldCommon.UseAlias != newCommon.UseAlias ||
		oldCommon.DisplayName() != newCommon.DisplayName() {
		t.notifyName = true
	}
	if oldCommon.Name != newCommon.Name {
		t.s.nameCache.Rename(newCommon.Name, oldCommon.Name, t.id)
	}
	*t.live = t.clone
	if t.s.dataLimiting && t.relimit != nil {
		t.relimit()
	}
	t.s.hasChanged = true
	t.notifyPrefs = true
}

func (t *settingsTx[F]) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.notifyPrefs {
		t.s.fanout(func(l Listener) { l.OnPrefsChange(t.s, t.id) })
	}
	if t.notifyName {
		t.s.fanout(func(l Listener) { l.OnNameChange(t.s, t.id) })
	}
}

// propsTx is the settings pattern applied to the properties block, without
// name tracking or retention.
type propsTx[P comparable] struct {
	s     *Store
	id    model.ObjectId
	live  *P
	clone P

	notify   bool
	released bool
}

func (t *propsTx[P]) Commit() {
	if t.clone == *t.live {
		return
	}
	*t.live = t.clone
	t.s.hasChanged = true
	t.notify = true
}

func (t *propsTx[P]) Release() {
	if t.released {
		return
	}
	t.released = true
	if t.notify {
		t.s.fanout(func(l Listener) { l.OnPropertiesChange(t.s, t.id) })
	}
}

// updateTx inserts one time-stamped record on commit, re-applying the owning
// entity's retention policy when scenario-wide limiting is on.
type updateTx struct {
	s    *Store
	id   model.ObjectId
	time float64

	insert  func()
	relimit func()

	committed bool
	notified  bool
}

func (t *updateTx) Commit() {
	if t.committed {
		return
	}
	t.committed = true
	t.insert()
	if t.s.dataLimiting && t.relimit != nil {
		t.relimit()
	}
	t.s.hasChanged = true
}

func (t *updateTx) Release() {
	if !t.committed || t.notified {
		return
	}
	t.notified = true
	t.s.newUpdates.OnEntityUpdate(t.s, t.id, t.time)
}

// scenarioTx mutates the scenario properties record under id 0.
type scenarioTx struct {
	s     *Store
	clone model.ScenarioProperties

	notify   bool
	released bool
}

func (t *scenarioTx) Commit() {
	if t.clone == t.s.props {
		return
	}
	t.s.props = t.clone
	t.s.hasChanged = true
	t.notify = true
}

func (t *scenarioTx) Release() {
	if t.released {
		return
	}
	t.released = true
	if !t.notify {
		return
	}
	local := make([]ScenarioListener, len(t.s.scenarioListeners))
	copy(local, t.s.scenarioListeners)
	for _, l := range local {
		l.OnScenarioPropertiesChange(t.s)
	}
}

// ScenarioProperties returns the current scenario properties record.
func (s *Store) ScenarioProperties() model.ScenarioProperties { return s.props }

// MutableScenarioProperties opens a settings transaction against the
// scenario properties record.
func (s *Store) MutableScenarioProperties() (*model.ScenarioProperties, Transaction) {
	tx := &scenarioTx{s: s, clone: s.props}
	return &tx.clone, tx
}
