// Package invoices correlates UCRM invoices with Xero invoices by invoice
// number. The map is persisted as invoices.json with the fields ucrmId and
// xeroId.
//
// Pending invoices are resolved against the clients map so each one carries
// the Xero contact it must be created under.
package invoices
