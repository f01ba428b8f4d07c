package domain

import "errors"

var (
	// Partner errors
	ErrPartnerNotFound    = errors.New("partner not found")
	ErrInvalidPartnerKind = errors.New("invalid partner kind")
	ErrPartnerMismatch    = errors.New("entry belongs to a different partner")

	// Entry errors
	ErrEntryNotFound    = errors.New("advance entry not found")
	ErrInvalidEntryKind = errors.New("invalid entry kind")
	ErrInvalidAmount    = errors.New("amount must be greater than zero")

	// Session errors
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrOperationInFlight = errors.New("another operation is already in flight")

	// Operation errors
	ErrConfirmationRequired = errors.New("delete requires confirmation")

	// Auth errors
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
