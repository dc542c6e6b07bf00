package store

import (
	"math"

	"github.com/signalsfoundry/simstore/model"
	"github.com/signalsfoundry/simstore/slice"
)

// command constrains a command record to one applicable to preferences F.
type command[F any] interface {
	slice.Record
	ApplyTo(*F) bool
}

// entry is one entity record: properties, preferences, and the slices
// holding its history. The registry exclusively owns entries; host and
// target links are ids, never pointers.
type entry[P comparable, F comparable, U slice.Record, C command[F]] struct {
	props    P
	prefs    F
	updates  *slice.Series[U]
	commands *slice.Commands[C]
	generic  *slice.GenericSeries
	category *slice.CategorySeries
}

func newEntry[P comparable, F comparable, U slice.Record, C command[F]](props P) *entry[P, F, U, C] {
	return &entry[P, F, U, C]{
		props:    props,
		updates:  slice.NewSeries[U](),
		commands: slice.NewCommands[C](),
		generic:  slice.NewGenericSeries(),
		category: slice.NewCategorySeries(),
	}
}

// collection owns every entry of one entity kind plus the per-kind accessors
// the registry needs: insertion order, host scans, original-id scans, and the
// common-prefs view used by retention and naming.
type collection[P comparable, F comparable, U slice.Record, C command[F]] struct {
	kind    model.ObjectType
	entries map[model.ObjectId]*entry[P, F, U, C]
	order   []model.ObjectId

	hostOf func(P) model.ObjectId
	common func(*F) *model.CommonPrefs
	origOf func(P) uint64
}

func newCollection[P comparable, F comparable, U slice.Record, C command[F]](
	kind model.ObjectType,
	hostOf func(P) model.ObjectId,
	common func(*F) *model.CommonPrefs,
	origOf func(P) uint64,
) *collection[P, F, U, C] {
	return &collection[P, F, U, C]{
		kind:    kind,
		entries: make(map[model.ObjectId]*entry[P, F, U, C]),
		hostOf:  hostOf,
		common:  common,
		origOf:  origOf,
	}
}

func (c *collection[P, F, U, C]) get(id model.ObjectId) *entry[P, F, U, C] {
	return c.entries[id]
}

func (c *collection[P, F, U, C]) put(id model.ObjectId, e *entry[P, F, U, C]) {
	if _, exists := c.entries[id]; !exists {
		c.order = append(c.order, id)
	}
	c.entries[id] = e
}

func (c *collection[P, F, U, C]) remove(id model.ObjectId) bool {
	if _, ok := c.entries[id]; !ok {
		return false
	}
	delete(c.entries, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[P, F, U, C]) len() int { return len(c.entries) }

// ids returns every id in insertion order.
func (c *collection[P, F, U, C]) ids() []model.ObjectId {
	out := make([]model.ObjectId, len(c.order))
	copy(out, c.order)
	return out
}

// idsForHost returns ids whose host is hostId, insertion order.
func (c *collection[P, F, U, C]) idsForHost(hostId model.ObjectId) []model.ObjectId {
	var out []model.ObjectId
	for _, id := range c.order {
		if c.hostOf(c.entries[id].props) == hostId {
			out = append(out, id)
		}
	}
	return out
}

// idsByOriginalId returns ids whose original external id matches, insertion
// order.
func (c *collection[P, F, U, C]) idsByOriginalId(originalId uint64) []model.ObjectId {
	var out []model.ObjectId
	for _, id := range c.order {
		if c.origOf(c.entries[id].props) == originalId {
			out = append(out, id)
		}
	}
	return out
}

// limits reads the retention thresholds from an entry's common preferences.
func (c *collection[P, F, U, C]) limits(e *entry[P, F, U, C]) slice.CommonLimits {
	cp := c.common(&e.prefs)
	return slice.CommonLimits{
		MaxPoints:  cp.DataLimitPoints,
		MaxSeconds: cp.DataLimitSeconds,
	}
}

// dataLimit applies retention to an entry's update and command slices.
func (c *collection[P, F, U, C]) dataLimit(e *entry[P, F, U, C]) {
	limits := c.limits(e)
	e.updates.LimitByPrefs(limits)
	e.commands.LimitByPrefs(limits)
}

// advanceCommands applies pending commands into the entry's live preferences,
// reporting whether any preference changed.
func (c *collection[P, F, U, C]) advanceCommands(e *entry[P, F, U, C], time float64) bool {
	return e.commands.Advance(time, func(cmd C) bool {
		return cmd.ApplyTo(&e.prefs)
	})
}

// flushData clears update/command history for one entry per the field set and
// half-open time range.
func (c *collection[P, F, U, C]) flushData(e *entry[P, F, U, C], fields FlushFieldSet, startTime, endTime float64) {
	// a start of 0 is a range flush: records at the static time -1 survive
	full := startTime < 0 && math.IsInf(endTime, 1)
	if fields.Has(FlushUpdates) {
		if full {
			e.updates.Flush()
		} else {
			e.updates.FlushRange(startTime, endTime)
		}
	}
	if fields.Has(FlushCommands) {
		if full {
			e.commands.Flush()
		} else {
			e.commands.FlushRange(startTime, endTime)
		}
	}
}

// timeBounds returns the min first time and max last time across the entry's
// update and command slices.
func (c *collection[P, F, U, C]) timeBounds(e *entry[P, F, U, C]) (float64, float64) {
	first := minTime(e.updates.FirstTime(), e.commands.FirstTime())
	last := maxTime(e.updates.LastTime(), e.commands.LastTime())
	return first, last
}

func minTime(a, b float64) float64 {
	// -1 marks an empty slice; prefer a real time when one side is empty
	if a < 0 {
		return b
	}
	if b < 0 {
		return a
	}
	return math.Min(a, b)
}

func maxTime(a, b float64) float64 {
	return math.Max(a, b)
}
