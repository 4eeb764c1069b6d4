package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/core/snapshot"
	clientModels "github.com/mvqn/ucrm-plugin-xero/feature/clients/models"
	invoiceModels "github.com/mvqn/ucrm-plugin-xero/feature/invoices/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	sourceRef      string
	destinationRef string
	noPersist      bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Correlate UCRM records with their Xero counterparts",
	Long: `Reconcile a UCRM snapshot against a Xero snapshot and update the
persisted correlation map. Snapshots are JSON or YAML arrays, read from a
local path or from s3://bucket/key.

The change report (created, updated, deleted, missing, duplicated per side)
is printed as JSON.`,
}

var clientsReconcileCmd = &cobra.Command{
	Use:   "clients",
	Short: "Reconcile UCRM clients with Xero contacts",
	Long: `Reconcile UCRM clients with Xero contacts.

Examples:
  reconcile clients --source ucrm-clients.json --destination xero-contacts.json

  # Report only, leave the persisted map untouched
  reconcile clients --source ucrm-clients.json --destination xero-contacts.json --no-persist`,
	RunE: runClientsReconcile,
}

var invoicesReconcileCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Reconcile UCRM invoices with Xero invoices",
	RunE:  runInvoicesReconcile,
}

func init() {
	for _, c := range []*cobra.Command{clientsReconcileCmd, invoicesReconcileCmd} {
		c.Flags().StringVar(&sourceRef, "source", "", "UCRM snapshot (path or s3://bucket/key)")
		c.Flags().StringVar(&destinationRef, "destination", "", "Xero snapshot (path or s3://bucket/key)")
		c.Flags().BoolVar(&noPersist, "no-persist", false, "Start from an empty map and do not save it")
		_ = c.MarkFlagRequired("source")
		_ = c.MarkFlagRequired("destination")
		reconcileCmd.AddCommand(c)
	}

	RootCmd.AddCommand(reconcileCmd)
}

func runClientsReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	ucrm, xero, err := loadSnapshots[clientModels.Client, clientModels.Contact](ctx, a.snapshot)
	if err != nil {
		return err
	}

	svc, err := a.clientsService(!noPersist)
	if err != nil {
		return err
	}

	a.logger.Info("Starting clients reconciliation",
		zap.Int("ucrm_records", len(ucrm)),
		zap.Int("xero_records", len(xero)))

	res, err := svc.Map(ctx, ucrm, xero)
	return report(cmd.OutOrStdout(), res, err)
}

func runInvoicesReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	ucrm, xero, err := loadSnapshots[invoiceModels.Invoice, invoiceModels.XeroInvoice](ctx, a.snapshot)
	if err != nil {
		return err
	}

	svc, err := a.invoicesService(!noPersist)
	if err != nil {
		return err
	}

	a.logger.Info("Starting invoices reconciliation",
		zap.Int("ucrm_records", len(ucrm)),
		zap.Int("xero_records", len(xero)))

	res, err := svc.Map(ctx, ucrm, xero)
	return report(cmd.OutOrStdout(), res, err)
}

func loadSnapshots[S, D any](ctx context.Context, loader *snapshot.Loader) ([]S, []D, error) {
	source, err := snapshot.Load[S](ctx, loader, sourceRef)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load source snapshot: %w", err)
	}
	destination, err := snapshot.Load[D](ctx, loader, destinationRef)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load destination snapshot: %w", err)
	}
	return source, destination, nil
}

// report prints the change sets of res. A failed save still yields a result,
// which is printed before the error is returned.
func report(w io.Writer, res *reconcile.Result, runErr error) error {
	if res != nil {
		out := struct {
			Source      *reconcile.ChangeSet `json:"source"`
			Destination *reconcile.ChangeSet `json:"destination"`
			Entries     int                  `json:"entries"`
		}{res.Source, res.Destination, len(res.Map)}

		if err := writeJSON(w, out); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("reconciliation failed: %w", runErr)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
