// Package models defines the UCRM and Xero invoice records.
package models
