// Package snapshot loads the record collections handed over by the UCRM and
// Xero fetchers.
//
// A snapshot is a JSON or YAML list of records, stored on local disk or in
// the object store under an s3://bucket/key reference:
//
//	loader := snapshot.NewOSLoader(storageClient)
//	clients, err := snapshot.Load[clients.Client](ctx, loader, "exports/clients.yaml")
//	contacts, err := snapshot.Load[clients.Contact](ctx, loader, "s3://exports/contacts.json")
package snapshot
