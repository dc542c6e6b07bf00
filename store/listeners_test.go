package store

import (
	"testing"

	"github.com/signalsfoundry/simstore/model"
)

// removerListener removes a victim listener from inside a callback.
type removerListener struct {
	BaseListener
	s      *Store
	victim Listener
	fired  int
}

func (r *removerListener) OnAddEntity(*Store, model.ObjectId, model.ObjectType) {
	r.fired++
	if r.victim != nil {
		r.s.RemoveListener(r.victim)
		r.victim = nil
	}
}

func TestListenerRemovedMidFanoutGetsNoFurtherEvents(t *testing.T) {
	s := New()

	victim := &eventRecorder{}
	remover := &removerListener{s: s, victim: victim}
	tail := &eventRecorder{}

	s.AddListener(remover)
	s.AddListener(victim)
	s.AddListener(tail)

	addPlatform(t, s, "p")

	// the remover fires first and removes the victim; the victim must be
	// skipped for the rest of the in-flight pass
	if len(victim.added) != 0 {
		t.Fatalf("removed listener received %d events from the in-flight pass", len(victim.added))
	}
	if len(tail.added) != 1 {
		t.Fatalf("tail listener received %d events, want 1", len(tail.added))
	}
	if remover.fired == 0 {
		t.Fatalf("remover never fired")
	}
}

func TestRemovedListenerStaysRemovedAfterThePass(t *testing.T) {
	s := New()

	victim := &eventRecorder{}
	s.AddListener(&removerListener{s: s, victim: victim})
	s.AddListener(victim)

	addPlatform(t, s, "first")
	addPlatform(t, s, "second")

	if len(victim.added) != 0 {
		t.Fatalf("removed listener received %d later events", len(victim.added))
	}
}

func TestListenerAddedMidFanoutJoinsNextPass(t *testing.T) {
	s := New()

	late := &eventRecorder{}
	adder := &adderListener{s: s, add: late}
	s.AddListener(adder)

	addPlatform(t, s, "first")
	// the snapshot taken at fan-out start does not include late
	if len(late.added) != 0 {
		t.Fatalf("listener added mid-pass received %d events from that pass", len(late.added))
	}

	addPlatform(t, s, "second")
	if len(late.added) == 0 {
		t.Fatalf("listener added mid-pass never joined later passes")
	}
}

type adderListener struct {
	BaseListener
	s   *Store
	add Listener
}

func (a *adderListener) OnAddEntity(*Store, model.ObjectId, model.ObjectType) {
	if a.add != nil {
		a.s.AddListener(a.add)
		a.add = nil
	}
}

func TestRemoveListenerNotPresentIsNoOp(t *testing.T) {
	s := New()
	kept := &eventRecorder{}
	s.AddListener(kept)

	s.RemoveListener(&eventRecorder{})

	addPlatform(t, s, "p")
	if len(kept.added) != 1 {
		t.Fatalf("registered listener received %d events, want 1", len(kept.added))
	}
}

func TestRemovalNotificationsBracketTheRemoval(t *testing.T) {
	s := New()
	id := addPlatform(t, s, "p")

	probe := &removalProbe{s: s, id: id}
	s.AddListener(probe)

	s.RemoveEntity(id)

	if probe.preKind != model.PlatformType {
		t.Fatalf("OnRemoveEntity saw kind %v, want platform still registered", probe.preKind)
	}
	if probe.postKind != model.NoneType {
		t.Fatalf("OnPostRemoveEntity saw kind %v, want entity gone", probe.postKind)
	}
}

// removalProbe records what the store reports for an id during the remove
// callbacks.
type removalProbe struct {
	BaseListener
	s  *Store
	id model.ObjectId

	preKind  model.ObjectType
	postKind model.ObjectType
}

func (p *removalProbe) OnRemoveEntity(s *Store, id model.ObjectId, _ model.ObjectType) {
	if id == p.id {
		p.preKind = s.ObjectType(id)
	}
}

func (p *removalProbe) OnPostRemoveEntity(s *Store, id model.ObjectId, _ model.ObjectType) {
	if id == p.id {
		p.postKind = s.ObjectType(id)
	}
}
