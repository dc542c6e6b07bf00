// Package slice implements the per-entity time-series containers backing the
// scenario data store: sorted update series with a current-value cursor,
// command series with piecewise-constant application, and sparse generic and
// category data series.
package slice

import "sort"

// Record is any time-stamped record held by a series. Times are seconds
// within the scenario reference year.
type Record interface {
	RecordTime() float64
}

// Interpolator computes a synthetic record between two bracketing samples.
type Interpolator[T Record] interface {
	Interpolate(a, b T, time float64) T
}

// Series is an ordered container of update records with a "current" cursor
// advanced by the store's time-cursor advancer.
type Series[T Record] struct {
	items   []T
	current *T
	changed bool

	// live limits tuned independently of preference-driven retention,
	// applied on every insert once set (LobGroup slices)
	liveLimits CommonLimits
}

// NewSeries returns an empty series.
func NewSeries[T Record]() *Series[T] {
	return &Series[T]{}
}

// Insert adds rec in time order. A record with a duplicate time replaces the
// existing record.
func (s *Series[T]) Insert(rec T) {
	t := rec.RecordTime()
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].RecordTime() >= t
	})
	if i < len(s.items) && s.items[i].RecordTime() == t {
		s.items[i] = rec
	} else {
		s.items = append(s.items, rec)
		copy(s.items[i+1:], s.items[i:])
		s.items[i] = rec
	}
	s.changed = true
	if s.liveLimits.MaxPoints > 0 || s.liveLimits.MaxSeconds > 0 {
		s.LimitByPrefs(s.liveLimits)
	}
}

// SetMaxDataPoints tunes the live point limit, applying it immediately.
func (s *Series[T]) SetMaxDataPoints(points uint32) {
	if s.liveLimits.MaxPoints == points {
		return
	}
	s.liveLimits.MaxPoints = points
	if points > 0 {
		s.LimitByPrefs(s.liveLimits)
	}
}

// SetMaxDataSeconds tunes the live age limit, applying it immediately.
func (s *Series[T]) SetMaxDataSeconds(seconds float64) {
	if s.liveLimits.MaxSeconds == seconds {
		return
	}
	s.liveLimits.MaxSeconds = seconds
	if seconds > 0 {
		s.LimitByPrefs(s.liveLimits)
	}
}

// NumItems returns the number of stored records.
func (s *Series[T]) NumItems() int { return len(s.items) }

// FirstTime returns the earliest record time, or -1 when empty.
func (s *Series[T]) FirstTime() float64 {
	if len(s.items) == 0 {
		return -1
	}
	return s.items[0].RecordTime()
}

// LastTime returns the latest record time, or -1 when empty.
func (s *Series[T]) LastTime() float64 {
	if len(s.items) == 0 {
		return -1
	}
	return s.items[len(s.items)-1].RecordTime()
}

// At returns the i-th record in time order.
func (s *Series[T]) At(i int) T { return s.items[i] }

// Update advances the current cursor to time. Without an interpolator the
// current value is the latest record at or before time; none when time
// precedes the first record. With an interpolator and a bracketing pair, the
// current value is interpolated. The changed flag is set when the current
// value moved.
func (s *Series[T]) Update(time float64, interp Interpolator[T]) {
	i := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].RecordTime() > time
	})
	// i is the count of records at or before time
	if i == 0 {
		s.SetCurrent(nil)
		return
	}
	at := s.items[i-1]
	if interp != nil && at.RecordTime() != time && i < len(s.items) {
		synth := interp.Interpolate(at, s.items[i], time)
		s.SetCurrent(&synth)
		return
	}
	s.SetCurrent(&at)
}

// Current returns the record at the cursor, or nil when the entity has no
// valid current state.
func (s *Series[T]) Current() *T { return s.current }

// SetCurrent forces the cursor to rec (nil for none), stamping the changed
// flag when the value moved.
func (s *Series[T]) SetCurrent(rec *T) {
	if rec == nil && s.current == nil {
		return
	}
	if rec != nil && s.current != nil &&
		(*rec).RecordTime() == (*s.current).RecordTime() && !s.changed {
		// same-time sample; treated as unchanged unless an insert or flush
		// dirtied the series
		return
	}
	s.current = rec
	s.changed = true
}

// HasChanged reports whether the current value moved since ClearChanged.
func (s *Series[T]) HasChanged() bool { return s.changed }

// SetChanged forces the changed flag, used when a derived value can move
// without a new record.
func (s *Series[T]) SetChanged() { s.changed = true }

// ClearChanged resets the changed flag.
func (s *Series[T]) ClearChanged() { s.changed = false }

// Flush discards every record.
func (s *Series[T]) Flush() {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.changed = true
}

// FlushRange discards records in the half-open range [start, end).
func (s *Series[T]) FlushRange(start, end float64) {
	lo := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].RecordTime() >= start
	})
	hi := sort.Search(len(s.items), func(i int) bool {
		return s.items[i].RecordTime() >= end
	})
	if lo == hi {
		return
	}
	s.items = append(s.items[:lo], s.items[hi:]...)
	s.changed = true
}

// CommonLimits are retention thresholds: zero means unbounded for that
// dimension.
type CommonLimits struct {
	MaxPoints  uint32
	MaxSeconds float64
}

// LimitByPrefs drops records from the oldest end until the series satisfies
// the limits. The most recent record is never dropped.
func (s *Series[T]) LimitByPrefs(limits CommonLimits) {
	n := len(s.items)
	if n == 0 {
		return
	}
	drop := 0
	if limits.MaxPoints > 0 && n > int(limits.MaxPoints) {
		drop = n - int(limits.MaxPoints)
	}
	if limits.MaxSeconds > 0 {
		cutoff := s.items[n-1].RecordTime() - limits.MaxSeconds
		for drop < n-1 && s.items[drop].RecordTime() < cutoff {
			drop++
		}
	}
	if drop == 0 {
		return
	}
	if drop > n-1 {
		drop = n - 1
	}
	s.items = append(s.items[:0], s.items[drop:]...)
	s.changed = true
}
