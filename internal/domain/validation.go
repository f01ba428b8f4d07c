package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrBankRequired        = errors.New("bank is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description exceeds maximum length")
	ErrDateRequired        = errors.New("date is required")
	ErrInvalidPartnerName  = errors.New("invalid partner name")
)

// Validation constants
const (
	MaxDescriptionLength = 500
	MaxBankLength        = 100
	MaxPartnerNameLength = 255
)

// ValidationError wraps a sentinel validation error with field-level detail.
type ValidationError struct {
	Err     error
	Details string
}

func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error, details string) error {
	return &ValidationError{Err: err, Details: details}
}

// ValidateEntry checks an advance entry before it is persisted.
// Amount is normalized to two-decimal currency precision on success.
func ValidateEntry(e *AdvanceEntry) error {
	if !e.PartnerKind.Valid() {
		return invalid(ErrInvalidPartnerKind, string(e.PartnerKind))
	}

	if strings.TrimSpace(e.PartnerID) == "" {
		return invalid(ErrPartnerNotFound, "partner id is empty")
	}

	if strings.TrimSpace(e.Bank) == "" {
		return invalid(ErrBankRequired, "")
	}

	if utf8.RuneCountInString(e.Bank) > MaxBankLength {
		return invalid(ErrBankRequired, fmt.Sprintf("bank exceeds %d characters", MaxBankLength))
	}

	if strings.TrimSpace(e.Description) == "" {
		return invalid(ErrDescriptionRequired, "")
	}

	// Lengths are counted in runes, not bytes, so accented text gets the
	// full advertised limit.
	if n := utf8.RuneCountInString(e.Description); n > MaxDescriptionLength {
		return invalid(ErrDescriptionTooLong, fmt.Sprintf("%d characters, maximum is %d", n, MaxDescriptionLength))
	}

	if e.Date.IsZero() {
		return invalid(ErrDateRequired, "")
	}

	if !e.Kind.Valid() {
		return invalid(ErrInvalidEntryKind, string(e.Kind))
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return invalid(ErrInvalidAmount, e.Amount.String())
	}

	e.Amount = e.Amount.Round(2)

	return nil
}

// ValidatePartner checks a partner before it is persisted.
func ValidatePartner(p *Partner) error {
	if !p.Kind.Valid() {
		return invalid(ErrInvalidPartnerKind, string(p.Kind))
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return invalid(ErrInvalidPartnerName, "name cannot be empty")
	}

	if utf8.RuneCountInString(name) > MaxPartnerNameLength {
		return invalid(ErrInvalidPartnerName, fmt.Sprintf("name exceeds %d characters", MaxPartnerNameLength))
	}

	return nil
}

// ValidatePagination clamps pagination parameters to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	const maxPageSize = 500
	const defaultPageSize = 50

	if limit <= 0 {
		limit = defaultPageSize
	}

	if limit > maxPageSize {
		limit = maxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
