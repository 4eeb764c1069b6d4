package models

// Invoice is a UCRM invoice as exported by the UCRM API.
type Invoice struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	ClientID int    `json:"clientId"`
}

// ContactRef is the contact reference embedded in a Xero invoice.
type ContactRef struct {
	ContactID string `json:"ContactID"`
}

// XeroInvoice is a Xero accounting invoice.
type XeroInvoice struct {
	InvoiceID     string     `json:"InvoiceID"`
	InvoiceNumber string     `json:"InvoiceNumber"`
	Contact       ContactRef `json:"Contact"`
}
