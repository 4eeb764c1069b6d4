package reconcile

import (
	"sort"

	"github.com/mvqn/ucrm-plugin-xero/core/utils"
)

// Entry holds what is known about one correlation name: each side's
// identifier stored under that side's ID field.
type Entry map[string]any

// Has reports whether the entry carries a value under field.
func (e Entry) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Clone returns a shallow copy of the entry.
func (e Entry) Clone() Entry {
	out := make(Entry, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Map is the correlation map: correlation name to entry. It is the only state
// that survives between runs.
type Map map[string]Entry

// Clone returns a copy of the map whose entries can be mutated independently.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for name, entry := range m {
		out[name] = entry.Clone()
	}
	return out
}

// Names returns the correlation names in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds the correlation name whose entry stores value under field.
// value is compared in its JSON form, so an int matches a persisted number.
func (m Map) Lookup(field string, value any) (string, bool) {
	normalized, err := utils.ToJSONValue(value)
	if err != nil {
		return "", false
	}
	want := utils.CanonicalString(normalized)

	for _, name := range m.Names() {
		stored, ok := m[name][field]
		if ok && utils.CanonicalString(stored) == want {
			return name, true
		}
	}
	return "", false
}

// Counterpart returns the value stored under toField for the entry whose
// fromField equals value, e.g. the Xero ID correlated with a UCRM ID.
func (m Map) Counterpart(fromField string, value any, toField string) (any, bool) {
	name, ok := m.Lookup(fromField, value)
	if !ok {
		return nil, false
	}
	counterpart, ok := m[name][toField]
	return counterpart, ok
}

// Pending returns the sorted names whose entry has haveField but lacks
// lackField, i.e. records still awaiting creation on the lackField side.
func (m Map) Pending(haveField, lackField string) []string {
	pending := []string{}
	for _, name := range m.Names() {
		entry := m[name]
		if entry.Has(haveField) && !entry.Has(lackField) {
			pending = append(pending, name)
		}
	}
	return pending
}

// Result is the outcome of one reconciliation run.
type Result struct {
	// Map is the correlation map after the run, already pruned.
	Map Map `json:"map"`

	// Source holds the changes observed on the source side.
	Source *ChangeSet `json:"source"`

	// Destination holds the changes observed on the destination side.
	Destination *ChangeSet `json:"destination"`
}
