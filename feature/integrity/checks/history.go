package checks

import (
	"context"

	"github.com/mvqn/ucrm-plugin-xero/core/history"
)

// HistoryReport strictly types the result of a run history check.
type HistoryReport struct {
	Enabled        bool     `json:"enabled"`
	Status         string   `json:"status"` // "ok", "disabled", "error"
	MissingColumns []string `json:"missing_columns"`
	Error          string   `json:"error,omitempty"`
}

// CheckHistory verifies the history table has every column a run needs.
func CheckHistory(ctx context.Context, recorder *history.Recorder) HistoryReport {
	if !recorder.Enabled() {
		return HistoryReport{Status: "disabled", MissingColumns: []string{}}
	}

	report := HistoryReport{Enabled: true, Status: "ok", MissingColumns: []string{}}
	missing, err := recorder.MissingColumns(ctx)
	if err != nil {
		report.Status = "error"
		report.Error = err.Error()
		return report
	}
	if len(missing) > 0 {
		report.Status = "error"
		report.MissingColumns = missing
	}
	return report
}
