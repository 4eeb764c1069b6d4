package integrity

import (
	"context"

	"github.com/mvqn/ucrm-plugin-xero/core/history"
	"github.com/mvqn/ucrm-plugin-xero/core/storage"
	"github.com/mvqn/ucrm-plugin-xero/feature/integrity/checks"

	"go.uber.org/zap"
)

// Service handles integrity checks.
type Service struct {
	maps     []checks.MapTarget
	client   storage.Client
	bucket   string
	recorder *history.Recorder
	logger   *zap.Logger
}

// NewService creates a new integrity service. client may be nil when maps
// live on disk; recorder may be nil when run history is disabled.
func NewService(maps []checks.MapTarget, client storage.Client, bucket string, recorder *history.Recorder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		maps:     maps,
		client:   client,
		bucket:   bucket,
		recorder: recorder,
		logger:   logger,
	}
}

// CheckMaps checks every registered correlation map.
func (s *Service) CheckMaps(ctx context.Context) []checks.MapReport {
	reports := make([]checks.MapReport, 0, len(s.maps))
	for _, target := range s.maps {
		reports = append(reports, checks.CheckMap(ctx, target))
	}
	return reports
}

// CheckBucket reports whether the map bucket exists.
func (s *Service) CheckBucket(ctx context.Context) (bool, error) {
	return checks.CheckBucket(ctx, s.client, s.bucket)
}

// FixBucket creates the map bucket.
func (s *Service) FixBucket(ctx context.Context) error {
	return checks.FixBucket(ctx, s.client, s.bucket, s.logger)
}

// CheckHistory checks the run history table.
func (s *Service) CheckHistory(ctx context.Context) checks.HistoryReport {
	return checks.CheckHistory(ctx, s.recorder)
}
