package category

import "testing"

func TestManagerInternsNamesAndValues(t *testing.T) {
	m := NewManager()

	affinity := m.AddCategoryName("Affinity")
	if again := m.AddCategoryName("Affinity"); again != affinity {
		t.Fatalf("re-adding a name returned %d, want %d", again, affinity)
	}

	friendly := m.AddCategoryValue(affinity, "Friendly")
	hostile := m.AddCategoryValue(affinity, "Hostile")
	if friendly == hostile {
		t.Fatalf("distinct values interned to the same int %d", friendly)
	}
	if again := m.AddCategoryValue(affinity, "Friendly"); again != friendly {
		t.Fatalf("re-adding a value returned %d, want %d", again, friendly)
	}

	if got := m.NameToInt("Affinity"); got != affinity {
		t.Fatalf("NameToInt = %d, want %d", got, affinity)
	}
	if got := m.NameToInt("Unknown"); got != NoCategory {
		t.Fatalf("NameToInt(Unknown) = %d, want NoCategory", got)
	}
	if got := m.NameFromInt(affinity); got != "Affinity" {
		t.Fatalf("NameFromInt = %q, want Affinity", got)
	}
	if got := m.ValueFromInt(hostile); got != "Hostile" {
		t.Fatalf("ValueFromInt = %q, want Hostile", got)
	}
	if got := m.NameFromInt(999); got != "" {
		t.Fatalf("NameFromInt(999) = %q, want empty", got)
	}

	values := m.ValuesForName(affinity)
	if len(values) != 2 || values[0] != friendly || values[1] != hostile {
		t.Fatalf("ValuesForName = %v, want [%d %d]", values, friendly, hostile)
	}
}

func TestManagerClear(t *testing.T) {
	m := NewManager()
	name := m.AddCategoryName("Platform Type")
	m.AddCategoryValue(name, "Ship")

	m.Clear()
	if got := m.NameToInt("Platform Type"); got != NoCategory {
		t.Fatalf("NameToInt after Clear = %d, want NoCategory", got)
	}
	if got := m.ValueToInt("Ship"); got != NoCategory {
		t.Fatalf("ValueToInt after Clear = %d, want NoCategory", got)
	}
}
