// Package models defines the UCRM client and Xero contact records that the
// clients feature correlates.
package models
