package slice

import (
	"sort"

	"github.com/signalsfoundry/simstore/model"
)

// GenericSeries holds sparse tagged scalar data for one entity (or for the
// scenario under id 0). Each tag is an independent piecewise-constant time
// series; the current value of a tag is the latest sample at or before the
// cursor.
type GenericSeries struct {
	byTag map[string][]model.GenericData

	current map[string]string
	cursor  float64
	started bool
}

// NewGenericSeries returns an empty generic-data series.
func NewGenericSeries() *GenericSeries {
	return &GenericSeries{
		byTag:   make(map[string][]model.GenericData),
		current: make(map[string]string),
	}
}

// Insert adds d in time order for its tag. When ignoreDuplicates is set, a
// sample whose value equals the preceding sample for the same tag is dropped.
func (g *GenericSeries) Insert(d model.GenericData, ignoreDuplicates bool) {
	items := g.byTag[d.Tag]
	i := sort.Search(len(items), func(i int) bool {
		return items[i].Time > d.Time
	})
	if ignoreDuplicates && i > 0 && items[i-1].Value == d.Value {
		return
	}
	items = append(items, d)
	copy(items[i+1:], items[i:])
	items[i] = d
	g.byTag[d.Tag] = items
}

// NumItems returns the total sample count across all tags.
func (g *GenericSeries) NumItems() int {
	n := 0
	for _, items := range g.byTag {
		n += len(items)
	}
	return n
}

// Tags returns the tags with at least one sample, in no particular order.
func (g *GenericSeries) Tags() []string {
	out := make([]string, 0, len(g.byTag))
	for tag := range g.byTag {
		out = append(out, tag)
	}
	return out
}

// Update advances the cursor to time and reports whether any tag's current
// value changed.
func (g *GenericSeries) Update(time float64) bool {
	changed := false
	for tag, items := range g.byTag {
		i := sort.Search(len(items), func(i int) bool {
			return items[i].Time > time
		})
		if i == 0 {
			if _, ok := g.current[tag]; ok {
				delete(g.current, tag)
				changed = true
			}
			continue
		}
		v := items[i-1].Value
		if cur, ok := g.current[tag]; !ok || cur != v {
			g.current[tag] = v
			changed = true
		}
	}
	g.cursor = time
	g.started = true
	return changed
}

// CurrentValue returns the current value for tag at the cursor.
func (g *GenericSeries) CurrentValue(tag string) (string, bool) {
	v, ok := g.current[tag]
	return v, ok
}

// RemoveTag drops every sample for tag, returning the number removed.
func (g *GenericSeries) RemoveTag(tag string) int {
	items, ok := g.byTag[tag]
	if !ok {
		return 0
	}
	delete(g.byTag, tag)
	delete(g.current, tag)
	return len(items)
}

// Flush discards every sample.
func (g *GenericSeries) Flush() {
	g.byTag = make(map[string][]model.GenericData)
	g.current = make(map[string]string)
}

// FlushRange discards samples in the half-open range [start, end).
func (g *GenericSeries) FlushRange(start, end float64) {
	for tag, items := range g.byTag {
		kept := items[:0]
		for _, d := range items {
			if d.Time >= start && d.Time < end {
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			delete(g.byTag, tag)
			delete(g.current, tag)
		} else {
			g.byTag[tag] = kept
		}
	}
}

// LimitByPrefs evicts the oldest samples of each tag per the limits, always
// retaining the most recent sample.
func (g *GenericSeries) LimitByPrefs(limits CommonLimits) {
	for tag, items := range g.byTag {
		g.byTag[tag] = limitRecords(items, limits, func(d model.GenericData) float64 { return d.Time })
	}
}

// limitRecords applies oldest-first eviction to a sorted record slice.
func limitRecords[T any](items []T, limits CommonLimits, timeOf func(T) float64) []T {
	n := len(items)
	if n == 0 {
		return items
	}
	drop := 0
	if limits.MaxPoints > 0 && n > int(limits.MaxPoints) {
		drop = n - int(limits.MaxPoints)
	}
	if limits.MaxSeconds > 0 {
		cutoff := timeOf(items[n-1]) - limits.MaxSeconds
		for drop < n-1 && timeOf(items[drop]) < cutoff {
			drop++
		}
	}
	if drop == 0 {
		return items
	}
	if drop > n-1 {
		drop = n - 1
	}
	return append(items[:0], items[drop:]...)
}
