package models

// ClientType distinguishes residential from commercial UCRM clients.
type ClientType int

const (
	ClientTypeResidential ClientType = 1
	ClientTypeCommercial  ClientType = 2
)

// Client is a UCRM client as exported by the UCRM API.
type Client struct {
	ID                      int        `json:"id"`
	ClientType              ClientType `json:"clientType"`
	FirstName               string     `json:"firstName"`
	LastName                string     `json:"lastName"`
	CompanyName             string     `json:"companyName"`
	CompanyContactFirstName string     `json:"companyContactFirstName"`
	CompanyContactLastName  string     `json:"companyContactLastName"`
}

// Contact is a Xero contact as returned by the Xero accounting API.
type Contact struct {
	ContactID     string `json:"ContactID"`
	Name          string `json:"Name"`
	FirstName     string `json:"FirstName,omitempty"`
	LastName      string `json:"LastName,omitempty"`
	ContactStatus string `json:"ContactStatus,omitempty"`
}
