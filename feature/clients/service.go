package clients

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/mvqn/ucrm-plugin-xero/core/history"
	"github.com/mvqn/ucrm-plugin-xero/core/logger"
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/core/utils"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no correlation matches an identifier.
var ErrNotFound = errors.New("client correlation not found")

// Correlation is one entry of the clients map.
type Correlation struct {
	Name   string `json:"name"`
	UcrmID any    `json:"ucrmId,omitempty"`
	XeroID any    `json:"xeroId,omitempty"`
}

// Service correlates UCRM clients with Xero contacts.
type Service struct {
	engine      *reconcile.Engine
	store       reconcile.MapStore
	recorder    *history.Recorder
	source      *reconcile.Definition[models.Client]
	destination *reconcile.Definition[models.Contact]
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewService creates a clients service. store may be nil to run without
// persistence and recorder may be nil to skip run history.
func NewService(store reconcile.MapStore, recorder *history.Recorder, format NameFormat, cacheTTL time.Duration, l *zap.Logger) (*Service, error) {
	if l == nil {
		l = zap.NewNop()
	}
	l = logger.WithKind(l, Kind)

	source, destination, err := Definitions(format, l)
	if err != nil {
		return nil, err
	}

	return &Service{
		engine:      reconcile.NewEngine(store, l),
		store:       store,
		recorder:    recorder,
		source:      source,
		destination: destination,
		cacheTTL:    cacheTTL,
		logger:      l,
	}, nil
}

// Map reconciles the given clients and contacts and records the run.
func (s *Service) Map(ctx context.Context, clients []models.Client, contacts []models.Contact) (*reconcile.Result, error) {
	started := time.Now()

	res, err := s.engine.Reconcile(ctx,
		reconcile.Bind("ucrm", s.source, clients),
		reconcile.Bind("xero", s.destination, contacts))

	if _, recErr := s.recorder.Record(ctx, Kind, started, res, err); recErr != nil {
		s.logger.Warn("Run history not recorded", zap.Error(recErr))
	}

	return res, err
}

// Current returns the persisted clients map, served from cache when fresh.
func (s *Service) Current(ctx context.Context) (reconcile.Map, error) {
	if s.store == nil {
		return reconcile.Map{}, nil
	}
	cache, err := reconcile.GetOrLoad(ctx, s.store, s.cacheTTL)
	if err != nil {
		return nil, err
	}
	return cache.Map, nil
}

// Pending returns the names of clients that still have to be created in Xero.
func (s *Service) Pending(ctx context.Context) ([]string, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return m.Pending(SourceField, DestinationField), nil
}

// PendingClients filters clients down to those correlated in UCRM only,
// i.e. the ones to push to Xero.
func (s *Service) PendingClients(ctx context.Context, clients []models.Client) ([]models.Client, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	pending := []models.Client{}
	for _, c := range clients {
		name, ok := m.Lookup(SourceField, c.ID)
		if ok && !m[name].Has(DestinationField) {
			pending = append(pending, c)
		}
	}
	return pending, nil
}

// ContactID returns the Xero contact ID correlated with a UCRM client ID.
func (s *Service) ContactID(ctx context.Context, ucrmID int) (string, bool, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return "", false, err
	}
	value, ok := m.Counterpart(SourceField, ucrmID, DestinationField)
	if !ok {
		return "", false, nil
	}
	return utils.ToString(value), true, nil
}

// Lookup finds a correlation by UCRM client ID (numeric) or Xero contact ID.
func (s *Service) Lookup(ctx context.Context, id string) (*Correlation, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	var (
		name string
		ok   bool
	)
	if n, convErr := strconv.Atoi(id); convErr == nil {
		name, ok = m.Lookup(SourceField, n)
	} else {
		name, ok = m.Lookup(DestinationField, id)
	}
	if !ok {
		return nil, ErrNotFound
	}

	entry := m[name]
	return &Correlation{Name: name, UcrmID: entry[SourceField], XeroID: entry[DestinationField]}, nil
}

// Runs returns the most recent reconciliation runs.
func (s *Service) Runs(ctx context.Context, limit int) ([]history.Run, error) {
	return s.recorder.Recent(ctx, Kind, limit)
}
