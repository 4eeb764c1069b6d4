package checks

import (
	"context"

	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/core/utils"
)

// MapTarget names one persisted correlation map and its two ID fields.
type MapTarget struct {
	Kind             string
	Store            reconcile.MapStore
	SourceField      string
	DestinationField string
}

// SharedIdentifier is one identifier stored under more than one name.
type SharedIdentifier struct {
	Field string   `json:"field"`
	Value string   `json:"value"`
	Names []string `json:"names"`
}

// MapReport strictly types the result of a map integrity check.
type MapReport struct {
	Kind               string             `json:"kind"`
	Location           string             `json:"location"`
	Status             string             `json:"status"` // "ok", "warning", "error"
	Entries            int                `json:"entries"`
	MissingSource      int                `json:"missing_source"`
	MissingDestination int                `json:"missing_destination"`
	Empty              []string           `json:"empty"`
	Shared             []SharedIdentifier `json:"shared"`
	Error              string             `json:"error,omitempty"`
}

// CheckMap loads the map behind target and reports entries carrying no
// identifier and identifiers claimed by several names. Empty entries are
// pruned by every run, so they point at a hand edit. Shared identifiers also
// arise when one side returns two records with the same ID under different
// names; they are reported as warnings either way.
func CheckMap(ctx context.Context, target MapTarget) MapReport {
	report := MapReport{
		Kind:     target.Kind,
		Location: target.Store.Location(),
		Status:   "ok",
		Empty:    []string{},
		Shared:   []SharedIdentifier{},
	}

	m, err := target.Store.Load(ctx)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report
	}

	report.Entries = len(m)
	report.MissingSource = len(m.Pending(target.DestinationField, target.SourceField))
	report.MissingDestination = len(m.Pending(target.SourceField, target.DestinationField))

	for _, name := range m.Names() {
		entry := m[name]
		if !entry.Has(target.SourceField) && !entry.Has(target.DestinationField) {
			report.Empty = append(report.Empty, name)
		}
	}
	report.Shared = append(report.Shared, sharedIdentifiers(m, target.SourceField)...)
	report.Shared = append(report.Shared, sharedIdentifiers(m, target.DestinationField)...)

	if len(report.Empty) > 0 || len(report.Shared) > 0 {
		report.Status = "warning"
	}
	return report
}

func sharedIdentifiers(m reconcile.Map, field string) []SharedIdentifier {
	owners := make(map[string][]string)
	display := make(map[string]string)
	var order []string
	for _, name := range m.Names() {
		value, ok := m[name][field]
		if !ok {
			continue
		}
		key := utils.CanonicalString(value)
		if _, seen := owners[key]; !seen {
			order = append(order, key)
			display[key] = utils.ToString(value)
		}
		owners[key] = append(owners[key], name)
	}

	var shared []SharedIdentifier
	for _, key := range order {
		if names := owners[key]; len(names) > 1 {
			shared = append(shared, SharedIdentifier{Field: field, Value: display[key], Names: names})
		}
	}
	return shared
}
