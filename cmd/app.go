package cmd

import (
	"context"
	"fmt"

	"github.com/mvqn/ucrm-plugin-xero/core/config"
	"github.com/mvqn/ucrm-plugin-xero/core/database"
	"github.com/mvqn/ucrm-plugin-xero/core/history"
	"github.com/mvqn/ucrm-plugin-xero/core/logger"
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/core/snapshot"
	"github.com/mvqn/ucrm-plugin-xero/core/storage"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients"
	"github.com/mvqn/ucrm-plugin-xero/feature/integrity/checks"
	"github.com/mvqn/ucrm-plugin-xero/feature/invoices"

	"go.uber.org/zap"
)

// app bundles what every command needs: configuration, logger, the optional
// storage client and the optional run history.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	client   storage.Client
	recorder *history.Recorder
	snapshot *snapshot.Loader
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// The client does not dial until used, so an unreachable endpoint only
	// matters to the s3 backend and s3:// snapshots.
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		if cfg.Reconcile.Backend == reconcile.BackendS3 {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		l.Warn("Storage client unavailable", zap.Error(err))
		client = nil
	}

	a := &app{
		cfg:      cfg,
		logger:   l,
		client:   client,
		snapshot: snapshot.NewOSLoader(client),
	}

	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			a.recorder = history.NewRecorder(db, l)
			if err := a.recorder.Migrate(ctx); err != nil {
				l.Warn("Run history migration failed", zap.Error(err))
				a.recorder = nil
			}
		}
	}

	return a, nil
}

// store opens the map store for kind, or returns nil when persist is false.
func (a *app) store(kind string, persist bool) (reconcile.MapStore, error) {
	if !persist {
		return nil, nil
	}
	return a.cfg.Reconcile.OpenStore(kind, a.client, a.cfg.Storage.Bucket)
}

func (a *app) clientsService(persist bool) (*clients.Service, error) {
	format, err := clients.ParseNameFormat(a.cfg.Reconcile.NameFormat)
	if err != nil {
		return nil, err
	}
	store, err := a.store(clients.Kind, persist)
	if err != nil {
		return nil, err
	}
	return clients.NewService(store, a.recorder, format, a.cfg.Reconcile.CacheTTL(), a.logger)
}

func (a *app) invoicesService(persist bool) (*invoices.Service, error) {
	store, err := a.store(invoices.Kind, persist)
	if err != nil {
		return nil, err
	}
	// Contacts are always resolved against the persisted clients map.
	clientStore, err := a.store(clients.Kind, true)
	if err != nil {
		return nil, err
	}
	return invoices.NewService(store, clientStore, a.recorder, a.cfg.Reconcile.CacheTTL(), a.logger)
}

// mapTargets lists every persisted map for the integrity checks.
func (a *app) mapTargets() ([]checks.MapTarget, error) {
	kinds := []checks.MapTarget{
		{Kind: clients.Kind, SourceField: clients.SourceField, DestinationField: clients.DestinationField},
		{Kind: invoices.Kind, SourceField: invoices.SourceField, DestinationField: invoices.DestinationField},
	}
	for i := range kinds {
		store, err := a.store(kinds[i].Kind, true)
		if err != nil {
			return nil, err
		}
		kinds[i].Store = store
	}
	return kinds, nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}
