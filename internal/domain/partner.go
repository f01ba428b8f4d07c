package domain

import (
	"fmt"
	"strings"
	"time"
)

// PartnerKind separates the two independent ledgers: providers and
// transporters never share balances, even when IDs collide.
type PartnerKind string

const (
	// PartnerKindProvider is a goods or services provider.
	PartnerKindProvider PartnerKind = "PROVIDER"
	// PartnerKindTransport is a transport company.
	PartnerKindTransport PartnerKind = "TRANSPORT"
)

// ParsePartnerKind parses a partner kind from its string form. It is
// case-insensitive and accepts the plural forms used in URL paths.
func ParsePartnerKind(s string) (PartnerKind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimSuffix(normalized, "S")

	switch normalized {
	case "PROVIDER":
		return PartnerKindProvider, nil
	case "TRANSPORT", "TRANSPORTER":
		return PartnerKindTransport, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPartnerKind, s)
	}
}

// Valid reports whether the kind is one of the two known values.
func (k PartnerKind) Valid() bool {
	return k == PartnerKindProvider || k == PartnerKindTransport
}

// Partner is a business partner that holds an advance ledger.
type Partner struct {
	ID        string
	Kind      PartnerKind
	Name      string
	TaxID     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
