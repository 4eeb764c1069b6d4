package invoices

import (
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients"
	"github.com/mvqn/ucrm-plugin-xero/feature/invoices/models"
)

const (
	// Kind names the correlation map and the history rows of this feature.
	Kind = "invoices"

	SourceField      = "ucrmId"
	DestinationField = "xeroId"
)

// Definitions builds the UCRM and Xero invoice definitions. Invoices
// correlate by invoice number.
func Definitions() (*reconcile.Definition[models.Invoice], *reconcile.Definition[models.XeroInvoice], error) {
	source, err := reconcile.NewDefinition(reconcile.DefinitionConfig[models.Invoice]{
		Namer:        reconcile.NamerFunc[models.Invoice](func(i models.Invoice) string { return clients.NormalizeName(i.Number) }),
		IDField:      SourceField,
		CompareField: "id",
		Compare:      func(i models.Invoice) any { return i.ID },
	})
	if err != nil {
		return nil, nil, err
	}

	destination, err := reconcile.NewDefinition(reconcile.DefinitionConfig[models.XeroInvoice]{
		Namer:        reconcile.NamerFunc[models.XeroInvoice](func(i models.XeroInvoice) string { return clients.NormalizeName(i.InvoiceNumber) }),
		IDField:      DestinationField,
		CompareField: "InvoiceID",
		Compare:      func(i models.XeroInvoice) any { return i.InvoiceID },
	})
	if err != nil {
		return nil, nil, err
	}

	return source, destination, nil
}
