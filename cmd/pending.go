package cmd

import (
	"context"

	"github.com/mvqn/ucrm-plugin-xero/core/snapshot"
	clientModels "github.com/mvqn/ucrm-plugin-xero/feature/clients/models"
	invoiceModels "github.com/mvqn/ucrm-plugin-xero/feature/invoices/models"

	"github.com/spf13/cobra"
)

var pendingSourceRef string

// pendingCmd lists records still to be created in Xero.
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List UCRM records not yet created in Xero",
	Long: `List the correlation names whose entry has a UCRM ID but no Xero ID.

With --source the matching UCRM records are printed instead, ready to be
pushed. Pending invoices carry the Xero contact of their client when the
client is already correlated.`,
}

var clientsPendingCmd = &cobra.Command{
	Use:   "clients",
	Short: "List clients pending creation in Xero",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.clientsService(true)
		if err != nil {
			return err
		}

		if pendingSourceRef == "" {
			names, err := svc.Pending(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), names)
		}

		records, err := snapshot.Load[clientModels.Client](ctx, a.snapshot, pendingSourceRef)
		if err != nil {
			return err
		}
		pending, err := svc.PendingClients(ctx, records)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), pending)
	},
}

var invoicesPendingCmd = &cobra.Command{
	Use:   "invoices",
	Short: "List invoices pending creation in Xero",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		svc, err := a.invoicesService(true)
		if err != nil {
			return err
		}

		if pendingSourceRef == "" {
			names, err := svc.Pending(ctx)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), names)
		}

		records, err := snapshot.Load[invoiceModels.Invoice](ctx, a.snapshot, pendingSourceRef)
		if err != nil {
			return err
		}
		pending, err := svc.PendingInvoices(ctx, records)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), pending)
	},
}

func init() {
	for _, c := range []*cobra.Command{clientsPendingCmd, invoicesPendingCmd} {
		c.Flags().StringVar(&pendingSourceRef, "source", "", "UCRM snapshot to select pending records from")
		pendingCmd.AddCommand(c)
	}

	RootCmd.AddCommand(pendingCmd)
}
