package store

import "testing"

func TestTableRowsKeepTimeOrder(t *testing.T) {
	m := NewTableManager()
	tbl := m.AddTable(1, "rcs")

	tbl.AddRow(TableRow{Time: 5, Values: map[string]float64{"dbsm": -10}})
	tbl.AddRow(TableRow{Time: 1, Values: map[string]float64{"dbsm": -12}})
	tbl.AddRow(TableRow{Time: 3, Values: map[string]float64{"dbsm": -11}})

	if got := tbl.NumRows(); got != 3 {
		t.Fatalf("NumRows = %d, want 3", got)
	}
	for i, want := range []float64{1, 3, 5} {
		if got := tbl.Row(i).Time; got != want {
			t.Fatalf("Row(%d).Time = %v, want %v", i, got, want)
		}
	}
}

func TestAddTableDeduplicatesByName(t *testing.T) {
	m := NewTableManager()
	a := m.AddTable(1, "rcs")
	b := m.AddTable(1, "rcs")
	if a != b {
		t.Fatalf("AddTable created a second table under the same name")
	}
	if m.AddTable(2, "rcs") == a {
		t.Fatalf("tables with the same name but different owners collide")
	}
	if got := len(m.TablesForOwner(1)); got != 1 {
		t.Fatalf("owner 1 holds %d tables, want 1", got)
	}
}

func TestDeleteTablesByOwner(t *testing.T) {
	m := NewTableManager()
	m.AddTable(1, "rcs")
	m.AddTable(1, "antenna")
	m.AddTable(2, "rcs")

	if got := m.DeleteTablesByOwner(1); got != 2 {
		t.Fatalf("DeleteTablesByOwner removed %d tables, want 2", got)
	}
	if m.Table(1, "rcs") != nil {
		t.Fatalf("deleted table still resolves")
	}
	if m.Table(2, "rcs") == nil {
		t.Fatalf("other owner's table was deleted")
	}
}

func TestFlushOwnerRange(t *testing.T) {
	m := NewTableManager()
	tbl := m.AddTable(1, "rcs")
	for _, tm := range []float64{1, 2, 3, 4} {
		tbl.AddRow(TableRow{Time: tm})
	}

	m.FlushOwner(1, 2, 4)

	if got := tbl.NumRows(); got != 2 {
		t.Fatalf("NumRows after range flush = %d, want 2", got)
	}
	if tbl.Row(0).Time != 1 || tbl.Row(1).Time != 4 {
		t.Fatalf("survivors [%v, %v], want 1 and 4", tbl.Row(0).Time, tbl.Row(1).Time)
	}
}
