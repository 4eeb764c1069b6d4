// Package clients correlates UCRM clients with Xero contacts.
//
// A client's correlation name is derived from its type: residential clients
// use their personal names in the configured NameFormat, commercial clients
// their company name. Xero contacts use their display name. Both are NFC
// normalized with whitespace collapsed.
//
// The map is persisted as clients.json with the fields ucrmId and xeroId.
//
// # Components
//
//   - Service: runs reconciliations and answers map queries.
//   - Handler: exposes the map over HTTP.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /clients/map         : the whole correlation map.
//   - GET /clients/pending     : names awaiting creation in Xero.
//   - GET /clients/lookup/:id  : correlation for a UCRM or Xero ID.
//   - GET /clients/runs        : recent reconciliation runs.
package clients
