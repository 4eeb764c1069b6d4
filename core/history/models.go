package history

import "time"

// Run is one reconciliation run as stored in the history table.
type Run struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Kind       string    `gorm:"size:32;index" json:"kind"`
	StartedAt  time.Time `gorm:"index" json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Entries    int       `json:"entries"`

	SourceCreated    int `json:"sourceCreated"`
	SourceUpdated    int `json:"sourceUpdated"`
	SourceDeleted    int `json:"sourceDeleted"`
	SourceMissing    int `json:"sourceMissing"`
	SourceDuplicated int `json:"sourceDuplicated"`

	DestinationCreated    int `json:"destinationCreated"`
	DestinationUpdated    int `json:"destinationUpdated"`
	DestinationDeleted    int `json:"destinationDeleted"`
	DestinationMissing    int `json:"destinationMissing"`
	DestinationDuplicated int `json:"destinationDuplicated"`

	// Error is the run's error message, empty on success.
	Error string `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the table name used by Run.
func (Run) TableName() string {
	return "sync_runs"
}

var runColumns = []string{
	"id", "kind", "started_at", "finished_at", "entries",
	"source_created", "source_updated", "source_deleted", "source_missing", "source_duplicated",
	"destination_created", "destination_updated", "destination_deleted", "destination_missing", "destination_duplicated",
	"error",
}
