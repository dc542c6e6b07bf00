package store

import (
	"testing"

	"github.com/signalsfoundry/simstore/model"
)

func addPlatform(t *testing.T, s *Store, name string) model.ObjectId {
	t.Helper()
	props, tx := s.AddPlatform()
	id := props.Id
	tx.Commit()
	tx.Release()

	prefs, ptx := s.MutablePlatformPrefs(id)
	prefs.Name = name
	prefs.DataDraw = true
	ptx.Commit()
	ptx.Release()
	return id
}

func addBeam(t *testing.T, s *Store, host model.ObjectId, kind model.BeamKind, name string) model.ObjectId {
	t.Helper()
	props, tx := s.AddBeam()
	id := props.Id
	props.HostId = host
	props.Kind = kind
	tx.Commit()
	tx.Release()

	prefs, ptx := s.MutableBeamPrefs(id)
	prefs.Name = name
	prefs.DataDraw = true
	ptx.Commit()
	ptx.Release()
	return id
}

func addGate(t *testing.T, s *Store, host model.ObjectId, kind model.GateKind, name string) model.ObjectId {
	t.Helper()
	props, tx := s.AddGate()
	id := props.Id
	props.HostId = host
	props.Kind = kind
	tx.Commit()
	tx.Release()

	prefs, ptx := s.MutableGatePrefs(id)
	prefs.Name = name
	prefs.DataDraw = true
	ptx.Commit()
	ptx.Release()
	return id
}

func addPlatformPoint(t *testing.T, s *Store, id model.ObjectId, tm, x float64) {
	t.Helper()
	tx := s.AddPlatformUpdate(id, model.PlatformUpdate{
		Time:        tm,
		Position:    model.Position{X: x},
		HasPosition: true,
	})
	tx.Commit()
	tx.Release()
}

// eventRecorder counts listener callbacks by event.
type eventRecorder struct {
	BaseListener

	added      []model.ObjectId
	removed    []model.ObjectId
	postRemove []model.ObjectId
	prefs      []model.ObjectId
	names      []model.ObjectId
	props      []model.ObjectId
	category   []model.ObjectId
	flushes    []model.ObjectId
	changes    int
	deletes    int
}

func (r *eventRecorder) OnAddEntity(_ *Store, id model.ObjectId, _ model.ObjectType) {
	r.added = append(r.added, id)
}

func (r *eventRecorder) OnRemoveEntity(_ *Store, id model.ObjectId, _ model.ObjectType) {
	r.removed = append(r.removed, id)
}

func (r *eventRecorder) OnPostRemoveEntity(_ *Store, id model.ObjectId, _ model.ObjectType) {
	r.postRemove = append(r.postRemove, id)
}

func (r *eventRecorder) OnPropertiesChange(_ *Store, id model.ObjectId) {
	r.props = append(r.props, id)
}

func (r *eventRecorder) OnPrefsChange(_ *Store, id model.ObjectId) {
	r.prefs = append(r.prefs, id)
}

func (r *eventRecorder) OnNameChange(_ *Store, id model.ObjectId) {
	r.names = append(r.names, id)
}

func (r *eventRecorder) OnCategoryDataChange(_ *Store, id model.ObjectId, _ model.ObjectType) {
	r.category = append(r.category, id)
}

func (r *eventRecorder) OnChange(*Store) { r.changes++ }

func (r *eventRecorder) OnFlush(_ *Store, id model.ObjectId) {
	r.flushes = append(r.flushes, id)
}

func (r *eventRecorder) OnScenarioDelete(*Store) { r.deletes++ }
