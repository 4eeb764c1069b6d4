package invoices

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/mvqn/ucrm-plugin-xero/core/history"
	"github.com/mvqn/ucrm-plugin-xero/core/logger"
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/core/utils"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients"
	"github.com/mvqn/ucrm-plugin-xero/feature/invoices/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when no correlation matches an identifier.
var ErrNotFound = errors.New("invoice correlation not found")

// Correlation is one entry of the invoices map.
type Correlation struct {
	Number string `json:"number"`
	UcrmID any    `json:"ucrmId,omitempty"`
	XeroID any    `json:"xeroId,omitempty"`
}

// PendingInvoice is a UCRM invoice still to be created in Xero, with the
// Xero contact it belongs to when the client is already correlated.
type PendingInvoice struct {
	Invoice       models.Invoice `json:"invoice"`
	XeroContactID string         `json:"xeroContactId,omitempty"`
}

// Service correlates UCRM invoices with Xero invoices.
type Service struct {
	engine      *reconcile.Engine
	store       reconcile.MapStore
	clientStore reconcile.MapStore
	recorder    *history.Recorder
	source      *reconcile.Definition[models.Invoice]
	destination *reconcile.Definition[models.XeroInvoice]
	cacheTTL    time.Duration
	logger      *zap.Logger
}

// NewService creates an invoices service. clientStore is the clients map,
// used to resolve the Xero contact of a pending invoice; it may be nil.
func NewService(store, clientStore reconcile.MapStore, recorder *history.Recorder, cacheTTL time.Duration, l *zap.Logger) (*Service, error) {
	if l == nil {
		l = zap.NewNop()
	}
	l = logger.WithKind(l, Kind)

	source, destination, err := Definitions()
	if err != nil {
		return nil, err
	}

	return &Service{
		engine:      reconcile.NewEngine(store, l),
		store:       store,
		clientStore: clientStore,
		recorder:    recorder,
		source:      source,
		destination: destination,
		cacheTTL:    cacheTTL,
		logger:      l,
	}, nil
}

// Map reconciles the given invoices and records the run.
func (s *Service) Map(ctx context.Context, ucrm []models.Invoice, xero []models.XeroInvoice) (*reconcile.Result, error) {
	started := time.Now()

	res, err := s.engine.Reconcile(ctx,
		reconcile.Bind("ucrm", s.source, ucrm),
		reconcile.Bind("xero", s.destination, xero))

	if _, recErr := s.recorder.Record(ctx, Kind, started, res, err); recErr != nil {
		s.logger.Warn("Run history not recorded", zap.Error(recErr))
	}

	return res, err
}

// Current returns the persisted invoices map.
func (s *Service) Current(ctx context.Context) (reconcile.Map, error) {
	return load(ctx, s.store, s.cacheTTL)
}

// Pending returns the numbers of invoices not yet created in Xero.
func (s *Service) Pending(ctx context.Context) ([]string, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return m.Pending(SourceField, DestinationField), nil
}

// PendingInvoices selects the invoices to push to Xero and attaches the
// Xero contact of each invoice's client.
func (s *Service) PendingInvoices(ctx context.Context, invoices []models.Invoice) ([]PendingInvoice, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	clientMap, err := load(ctx, s.clientStore, s.cacheTTL)
	if err != nil {
		return nil, err
	}

	pending := []PendingInvoice{}
	for _, inv := range invoices {
		number, ok := m.Lookup(SourceField, inv.ID)
		if !ok || m[number].Has(DestinationField) {
			continue
		}

		p := PendingInvoice{Invoice: inv}
		if contact, ok := clientMap.Counterpart(clients.SourceField, inv.ClientID, clients.DestinationField); ok {
			p.XeroContactID = utils.ToString(contact)
		} else {
			s.logger.Warn("Invoice client has no Xero contact yet",
				zap.String("number", number),
				zap.Int("client_id", inv.ClientID))
		}
		pending = append(pending, p)
	}
	return pending, nil
}

// Lookup finds a correlation by UCRM invoice ID (numeric) or Xero invoice ID.
func (s *Service) Lookup(ctx context.Context, id string) (*Correlation, error) {
	m, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	var (
		number string
		ok     bool
	)
	if n, convErr := strconv.Atoi(id); convErr == nil {
		number, ok = m.Lookup(SourceField, n)
	} else {
		number, ok = m.Lookup(DestinationField, id)
	}
	if !ok {
		return nil, ErrNotFound
	}

	entry := m[number]
	return &Correlation{Number: number, UcrmID: entry[SourceField], XeroID: entry[DestinationField]}, nil
}

// Runs returns the most recent reconciliation runs.
func (s *Service) Runs(ctx context.Context, limit int) ([]history.Run, error) {
	return s.recorder.Recent(ctx, Kind, limit)
}

func load(ctx context.Context, store reconcile.MapStore, ttl time.Duration) (reconcile.Map, error) {
	if store == nil {
		return reconcile.Map{}, nil
	}
	cache, err := reconcile.GetOrLoad(ctx, store, ttl)
	if err != nil {
		return nil, err
	}
	return cache.Map, nil
}
