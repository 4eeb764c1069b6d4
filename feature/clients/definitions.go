package clients

import (
	"github.com/mvqn/ucrm-plugin-xero/core/reconcile"
	"github.com/mvqn/ucrm-plugin-xero/feature/clients/models"

	"go.uber.org/zap"
)

const (
	// Kind names the correlation map and the history rows of this feature.
	Kind = "clients"

	SourceField      = "ucrmId"
	DestinationField = "xeroId"
)

// Definitions builds the UCRM and Xero side definitions.
func Definitions(format NameFormat, logger *zap.Logger) (*reconcile.Definition[models.Client], *reconcile.Definition[models.Contact], error) {
	source, err := reconcile.NewDefinition(reconcile.DefinitionConfig[models.Client]{
		Namer:        NewClientNamer(format, logger),
		IDField:      SourceField,
		CompareField: "id",
		Compare:      func(c models.Client) any { return c.ID },
	})
	if err != nil {
		return nil, nil, err
	}

	destination, err := reconcile.NewDefinition(reconcile.DefinitionConfig[models.Contact]{
		Namer:        ContactNamer{},
		IDField:      DestinationField,
		CompareField: "ContactID",
		Compare:      func(c models.Contact) any { return c.ContactID },
	})
	if err != nil {
		return nil, nil, err
	}

	return source, destination, nil
}
