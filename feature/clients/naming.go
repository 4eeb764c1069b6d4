package clients

import (
	"fmt"
	"strings"

	"github.com/mvqn/ucrm-plugin-xero/feature/clients/models"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// NameFormat orders a residential client's names.
type NameFormat string

const (
	FormatFirstLast NameFormat = "first_last"
	FormatLastFirst NameFormat = "last_first"
)

// ParseNameFormat accepts the format names and the plugin's legacy numeric
// settings ("1" first_last, "2" last_first).
func ParseNameFormat(s string) (NameFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(FormatFirstLast), "1", "":
		return FormatFirstLast, nil
	case string(FormatLastFirst), "2":
		return FormatLastFirst, nil
	default:
		return "", fmt.Errorf("unknown name format %q", s)
	}
}

// NormalizeName composes the name to NFC and collapses runs of whitespace,
// so names that render the same correlate.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(norm.NFC.String(name)), " ")
}

// ClientNamer derives a UCRM client's correlation name.
type ClientNamer struct {
	format NameFormat
	logger *zap.Logger
}

// NewClientNamer creates a namer for format.
func NewClientNamer(format NameFormat, logger *zap.Logger) *ClientNamer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientNamer{format: format, logger: logger}
}

// Name returns "First Last" or "Last, First" for residential clients and
// the company name for commercial ones. It returns "" and logs an error when
// the client type or format is unknown.
func (n *ClientNamer) Name(c models.Client) string {
	switch c.ClientType {
	case models.ClientTypeResidential:
		switch n.format {
		case FormatFirstLast:
			return NormalizeName(c.FirstName + " " + c.LastName)
		case FormatLastFirst:
			// The separator stays even when one part is empty, so keys written
			// by earlier versions of the plugin still match.
			return NormalizeName(c.LastName + ", " + c.FirstName)
		}
	case models.ClientTypeCommercial:
		return NormalizeName(c.CompanyName)
	}

	n.logger.Error("Name could not be determined for client",
		zap.Int("client_id", c.ID),
		zap.Int("client_type", int(c.ClientType)),
		zap.String("format", string(n.format)))
	return ""
}

// ContactNamer derives a Xero contact's correlation name.
type ContactNamer struct{}

func (ContactNamer) Name(c models.Contact) string {
	return NormalizeName(c.Name)
}
