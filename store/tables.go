package store

import (
	"sort"

	"github.com/signalsfoundry/simstore/model"
)

// TableRow is one time-stamped row of named scalar values.
type TableRow struct {
	Time   float64
	Values map[string]float64
}

// DataTable is an auxiliary time-series table attached to one owner entity
// (or to the scenario under owner 0). Tables carry arbitrary recorder data
// that does not fit the fixed update schemas.
type DataTable struct {
	Owner model.ObjectId
	Name  string

	rows []TableRow
}

// AddRow inserts a row in time order.
func (t *DataTable) AddRow(row TableRow) {
	i := sort.Search(len(t.rows), func(i int) bool {
		return t.rows[i].Time > row.Time
	})
	t.rows = append(t.rows, row)
	copy(t.rows[i+1:], t.rows[i:])
	t.rows[i] = row
}

// NumRows returns the row count.
func (t *DataTable) NumRows() int { return len(t.rows) }

// Row returns the i-th row in time order.
func (t *DataTable) Row(i int) TableRow { return t.rows[i] }

func (t *DataTable) flushRange(start, end float64) {
	kept := t.rows[:0]
	for _, r := range t.rows {
		if r.Time >= start && r.Time < end {
			continue
		}
		kept = append(kept, r)
	}
	t.rows = kept
}

// TableManager indexes data tables by owner so removal and flush can visit
// an entity's tables without per-entity storage.
type TableManager struct {
	byOwner map[model.ObjectId][]*DataTable
}

// NewTableManager returns an empty table manager.
func NewTableManager() *TableManager {
	return &TableManager{byOwner: make(map[model.ObjectId][]*DataTable)}
}

// AddTable creates a table under owner, or returns the existing table with
// the same name.
func (m *TableManager) AddTable(owner model.ObjectId, name string) *DataTable {
	for _, t := range m.byOwner[owner] {
		if t.Name == name {
			return t
		}
	}
	t := &DataTable{Owner: owner, Name: name}
	m.byOwner[owner] = append(m.byOwner[owner], t)
	return t
}

// Table returns the named table under owner, or nil.
func (m *TableManager) Table(owner model.ObjectId, name string) *DataTable {
	for _, t := range m.byOwner[owner] {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TablesForOwner returns the owner's tables in creation order.
func (m *TableManager) TablesForOwner(owner model.ObjectId) []*DataTable {
	tables := m.byOwner[owner]
	out := make([]*DataTable, len(tables))
	copy(out, tables)
	return out
}

// DeleteTablesByOwner drops every table under owner, returning the number
// removed.
func (m *TableManager) DeleteTablesByOwner(owner model.ObjectId) int {
	n := len(m.byOwner[owner])
	delete(m.byOwner, owner)
	return n
}

// FlushOwner discards rows in [start, end) from every table under owner.
// The tables themselves survive.
func (m *TableManager) FlushOwner(owner model.ObjectId, start, end float64) {
	for _, t := range m.byOwner[owner] {
		t.flushRange(start, end)
	}
}
