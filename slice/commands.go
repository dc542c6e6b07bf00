package slice

import "sort"

// Commands is an ordered container of command records. Commands are
// piecewise-constant preference overrides: advancing to time t applies, in
// order, every not-yet-applied command at or before t. A backward jump
// replays the command history from the beginning.
type Commands[C Record] struct {
	items   []C
	applied int
	lastT   float64
	started bool
}

// NewCommands returns an empty command series.
func NewCommands[C Record]() *Commands[C] {
	return &Commands[C]{}
}

// Insert adds cmd in time order. Duplicate-time commands are kept in
// insertion order so later commands win, matching commit order.
func (c *Commands[C]) Insert(cmd C) {
	t := cmd.RecordTime()
	i := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].RecordTime() > t
	})
	c.items = append(c.items, cmd)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = cmd
	if i < c.applied {
		// a command landed behind the cursor; replay on next advance
		c.applied = 0
		c.started = false
	}
}

// NumItems returns the number of stored commands.
func (c *Commands[C]) NumItems() int { return len(c.items) }

// FirstTime returns the earliest command time, or -1 when empty.
func (c *Commands[C]) FirstTime() float64 {
	if len(c.items) == 0 {
		return -1
	}
	return c.items[0].RecordTime()
}

// LastTime returns the latest command time, or -1 when empty.
func (c *Commands[C]) LastTime() float64 {
	if len(c.items) == 0 {
		return -1
	}
	return c.items[len(c.items)-1].RecordTime()
}

// Advance applies every pending command at or before time via apply,
// reporting whether any application changed state. Reset the cursor by
// advancing backward.
func (c *Commands[C]) Advance(time float64, apply func(C) bool) bool {
	if c.started && time < c.lastT {
		c.applied = 0
	}
	c.started = true
	c.lastT = time

	changed := false
	for c.applied < len(c.items) && c.items[c.applied].RecordTime() <= time {
		if apply(c.items[c.applied]) {
			changed = true
		}
		c.applied++
	}
	return changed
}

// Flush discards every command and resets the cursor.
func (c *Commands[C]) Flush() {
	c.items = nil
	c.applied = 0
	c.started = false
}

// FlushRange discards commands in the half-open range [start, end).
func (c *Commands[C]) FlushRange(start, end float64) {
	lo := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].RecordTime() >= start
	})
	hi := sort.Search(len(c.items), func(i int) bool {
		return c.items[i].RecordTime() >= end
	})
	if lo == hi {
		return
	}
	c.items = append(c.items[:lo], c.items[hi:]...)
	if c.applied > lo {
		c.applied = 0
		c.started = false
	}
}

// LimitByPrefs drops commands from the oldest end per the limits. The most
// recent command is never dropped.
func (c *Commands[C]) LimitByPrefs(limits CommonLimits) {
	n := len(c.items)
	if n == 0 {
		return
	}
	drop := 0
	if limits.MaxPoints > 0 && n > int(limits.MaxPoints) {
		drop = n - int(limits.MaxPoints)
	}
	if limits.MaxSeconds > 0 {
		cutoff := c.items[n-1].RecordTime() - limits.MaxSeconds
		for drop < n-1 && c.items[drop].RecordTime() < cutoff {
			drop++
		}
	}
	if drop == 0 {
		return
	}
	if drop > n-1 {
		drop = n - 1
	}
	c.items = append(c.items[:0], c.items[drop:]...)
	if c.applied > 0 {
		c.applied = 0
		c.started = false
	}
}
