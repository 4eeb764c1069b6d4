package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mvqn/ucrm-plugin-xero/core/database"
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultLimit caps Recent when no positive limit is given.
const DefaultLimit = 20

// Recorder persists run summaries. A nil Recorder, or one without a
// database, records nothing.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder returns a recorder backed by db, or nil when db is nil.
func NewRecorder(db *gorm.DB, logger *zap.Logger) *Recorder {
	if db == nil {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{db: db, logger: logger}
}

// Enabled reports whether runs are actually stored.
func (r *Recorder) Enabled() bool {
	return r != nil && r.db != nil
}

// Migrate creates or updates the history table and checks its columns.
func (r *Recorder) Migrate(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.db.WithContext(ctx).AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("migrate %s: %w", Run{}.TableName(), err)
	}

	missing, err := database.MissingColumns(r.db.WithContext(ctx), Run{}.TableName(), runColumns)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s lacks columns: %s", Run{}.TableName(), strings.Join(missing, ", "))
	}
	return nil
}

// MissingColumns reports the history table columns the database lacks.
func (r *Recorder) MissingColumns(ctx context.Context) ([]string, error) {
	if !r.Enabled() {
		return []string{}, nil
	}
	return database.MissingColumns(r.db.WithContext(ctx), Run{}.TableName(), runColumns)
}

// Record stores one run. res may be nil when the run failed before
// producing a result.
func (r *Recorder) Record(ctx context.Context, kind string, started time.Time, res *reconcile.Result, runErr error) (*Run, error) {
	if !r.Enabled() {
		return nil, nil
	}

	run := NewRun(kind, started, res, runErr)
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		r.logger.Error("Failed to record run", zap.String("kind", kind), zap.Error(err))
		return nil, fmt.Errorf("record run: %w", err)
	}
	return run, nil
}

// Recent returns the latest runs of kind, newest first.
func (r *Recorder) Recent(ctx context.Context, kind string, limit int) ([]Run, error) {
	if !r.Enabled() {
		return []Run{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var runs []Run
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	if runs == nil {
		runs = []Run{}
	}
	return runs, nil
}

// NewRun summarizes a run without storing it.
func NewRun(kind string, started time.Time, res *reconcile.Result, runErr error) *Run {
	run := &Run{
		ID:         uuid.NewString(),
		Kind:       kind,
		StartedAt:  started,
		FinishedAt: time.Now(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if res == nil {
		return run
	}

	run.Entries = len(res.Map)
	if src := res.Source; src != nil {
		run.SourceCreated = len(src.Created)
		run.SourceUpdated = len(src.Updated)
		run.SourceDeleted = len(src.Deleted)
		run.SourceMissing = len(src.Missing)
		run.SourceDuplicated = len(src.Duplicated)
	}
	if dst := res.Destination; dst != nil {
		run.DestinationCreated = len(dst.Created)
		run.DestinationUpdated = len(dst.Updated)
		run.DestinationDeleted = len(dst.Deleted)
		run.DestinationMissing = len(dst.Missing)
		run.DestinationDuplicated = len(dst.Duplicated)
	}
	return run
}
