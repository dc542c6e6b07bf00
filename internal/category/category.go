// Package category interns category name and value strings so category data
// records can be stored and compared as ints.
package category

// NoCategory is returned for strings that have not been interned.
const NoCategory = -1

// Manager interns category names and, per name, category values. Interned
// ints are stable for the life of the manager and scenario specific: Clear
// wipes them alongside scenario data.
type Manager struct {
	nameToInt map[string]int
	intToName []string

	valueToInt map[string]int
	intToValue []string

	valuesByName map[int][]int
}

// NewManager returns an empty category manager.
func NewManager() *Manager {
	return &Manager{
		nameToInt:    make(map[string]int),
		valueToInt:   make(map[string]int),
		valuesByName: make(map[int][]int),
	}
}

// AddCategoryName interns name, returning its int. Re-adding returns the
// existing int.
func (m *Manager) AddCategoryName(name string) int {
	if id, ok := m.nameToInt[name]; ok {
		return id
	}
	id := len(m.intToName)
	m.nameToInt[name] = id
	m.intToName = append(m.intToName, name)
	return id
}

// AddCategoryValue interns value under the given category name int, returning
// the value's int.
func (m *Manager) AddCategoryValue(nameInt int, value string) int {
	id, ok := m.valueToInt[value]
	if !ok {
		id = len(m.intToValue)
		m.valueToInt[value] = id
		m.intToValue = append(m.intToValue, value)
	}
	for _, existing := range m.valuesByName[nameInt] {
		if existing == id {
			return id
		}
	}
	m.valuesByName[nameInt] = append(m.valuesByName[nameInt], id)
	return id
}

// NameToInt returns the int for a category name, or NoCategory.
func (m *Manager) NameToInt(name string) int {
	if id, ok := m.nameToInt[name]; ok {
		return id
	}
	return NoCategory
}

// ValueToInt returns the int for a category value, or NoCategory.
func (m *Manager) ValueToInt(value string) int {
	if id, ok := m.valueToInt[value]; ok {
		return id
	}
	return NoCategory
}

// NameFromInt returns the name for an interned int, or "".
func (m *Manager) NameFromInt(nameInt int) string {
	if nameInt < 0 || nameInt >= len(m.intToName) {
		return ""
	}
	return m.intToName[nameInt]
}

// ValueFromInt returns the value for an interned int, or "".
func (m *Manager) ValueFromInt(valueInt int) string {
	if valueInt < 0 || valueInt >= len(m.intToValue) {
		return ""
	}
	return m.intToValue[valueInt]
}

// ValuesForName returns the interned value ints recorded under a name int.
func (m *Manager) ValuesForName(nameInt int) []int {
	values := m.valuesByName[nameInt]
	out := make([]int, len(values))
	copy(out, values)
	return out
}

// Clear drops every interned name and value.
func (m *Manager) Clear() {
	m.nameToInt = make(map[string]int)
	m.intToName = nil
	m.valueToInt = make(map[string]int)
	m.intToValue = nil
	m.valuesByName = make(map[int][]int)
}
