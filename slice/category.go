package slice

import (
	"sort"

	"github.com/signalsfoundry/simstore/model"
)

// CategorySeries holds category data for one entity: per-category
// piecewise-constant values keyed by interned name/value ints from the
// category registry.
type CategorySeries struct {
	byName map[int][]model.CategoryData

	current map[int]int
}

// NewCategorySeries returns an empty category-data series.
func NewCategorySeries() *CategorySeries {
	return &CategorySeries{
		byName:  make(map[int][]model.CategoryData),
		current: make(map[int]int),
	}
}

// Insert adds d in time order for its category. A duplicate-time sample for
// the same category replaces the existing sample.
func (c *CategorySeries) Insert(d model.CategoryData) {
	items := c.byName[d.Name]
	i := sort.Search(len(items), func(i int) bool {
		return items[i].Time >= d.Time
	})
	if i < len(items) && items[i].Time == d.Time {
		items[i] = d
	} else {
		items = append(items, d)
		copy(items[i+1:], items[i:])
		items[i] = d
	}
	c.byName[d.Name] = items
}

// NumItems returns the total sample count across all categories.
func (c *CategorySeries) NumItems() int {
	n := 0
	for _, items := range c.byName {
		n += len(items)
	}
	return n
}

// Update advances the cursor to time, reporting whether any category's
// current value changed.
func (c *CategorySeries) Update(time float64) bool {
	changed := false
	for name, items := range c.byName {
		i := sort.Search(len(items), func(i int) bool {
			return items[i].Time > time
		})
		if i == 0 {
			if _, ok := c.current[name]; ok {
				delete(c.current, name)
				changed = true
			}
			continue
		}
		v := items[i-1].Value
		if cur, ok := c.current[name]; !ok || cur != v {
			c.current[name] = v
			changed = true
		}
	}
	return changed
}

// CurrentValue returns the current interned value for a category name.
func (c *CategorySeries) CurrentValue(name int) (int, bool) {
	v, ok := c.current[name]
	return v, ok
}

// RemovePoint removes the sample at exactly (time, name, value), reporting
// whether one was found.
func (c *CategorySeries) RemovePoint(time float64, name, value int) bool {
	items, ok := c.byName[name]
	if !ok {
		return false
	}
	for i, d := range items {
		if d.Time == time && d.Value == value {
			c.byName[name] = append(items[:i], items[i+1:]...)
			if len(c.byName[name]) == 0 {
				delete(c.byName, name)
				delete(c.current, name)
			}
			return true
		}
	}
	return false
}

// Flush discards every sample.
func (c *CategorySeries) Flush() {
	c.byName = make(map[int][]model.CategoryData)
	c.current = make(map[int]int)
}

// FlushRange discards samples in the half-open range [start, end).
func (c *CategorySeries) FlushRange(start, end float64) {
	for name, items := range c.byName {
		kept := items[:0]
		for _, d := range items {
			if d.Time >= start && d.Time < end {
				continue
			}
			kept = append(kept, d)
		}
		if len(kept) == 0 {
			delete(c.byName, name)
			delete(c.current, name)
		} else {
			c.byName[name] = kept
		}
	}
}

// LimitByPrefs evicts the oldest samples of each category per the limits,
// always retaining the most recent sample.
func (c *CategorySeries) LimitByPrefs(limits CommonLimits) {
	for name, items := range c.byName {
		c.byName[name] = limitRecords(items, limits, func(d model.CategoryData) float64 { return d.Time })
	}
}
