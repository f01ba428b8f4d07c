package domain

import "fmt"

// SessionState is the visible state of a ledger editing session.
type SessionState string

const (
	// SessionViewing shows the entry list with the current balance.
	SessionViewing SessionState = "VIEWING"
	// SessionComposing has an empty form open for a new entry.
	SessionComposing SessionState = "COMPOSING"
	// SessionEditing has the form pre-filled from an existing entry.
	SessionEditing SessionState = "EDITING"
)

// LedgerSession is the explicit state machine for one partner-scoped ledger
// session. It serializes mutations: while an operation is in flight the
// session rejects further submits, which prevents double-submit races.
type LedgerSession struct {
	PartnerID   string
	PartnerKind PartnerKind
	State       SessionState

	// Editing holds a snapshot of the entry being edited, nil otherwise.
	Editing *AdvanceEntry

	inFlight bool
}

// NewLedgerSession opens a session for one partner, in the Viewing state.
func NewLedgerSession(kind PartnerKind, partnerID string) *LedgerSession {
	return &LedgerSession{
		PartnerID:   partnerID,
		PartnerKind: kind,
		State:       SessionViewing,
	}
}

// InFlight reports whether a mutation is awaiting its persistence result.
func (s *LedgerSession) InFlight() bool {
	return s.inFlight
}

// BeginCompose opens the empty new-entry form.
func (s *LedgerSession) BeginCompose() error {
	if err := s.requireIdle(SessionViewing); err != nil {
		return err
	}

	s.State = SessionComposing
	s.Editing = nil

	return nil
}

// BeginEdit opens the form pre-filled from an existing entry. The entry must
// belong to the partner the session was opened for.
func (s *LedgerSession) BeginEdit(entry *AdvanceEntry) error {
	if err := s.requireIdle(SessionViewing); err != nil {
		return err
	}

	if !entry.BelongsTo(s.PartnerKind, s.PartnerID) {
		return ErrPartnerMismatch
	}

	snapshot := *entry
	s.State = SessionEditing
	s.Editing = &snapshot

	return nil
}

// Cancel abandons the open form and returns to Viewing.
func (s *LedgerSession) Cancel() error {
	if s.inFlight {
		return ErrOperationInFlight
	}

	if s.State != SessionComposing && s.State != SessionEditing {
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, s.State)
	}

	s.State = SessionViewing
	s.Editing = nil

	return nil
}

// Submit marks the open form's create or update as in flight.
func (s *LedgerSession) Submit() error {
	if s.inFlight {
		return ErrOperationInFlight
	}

	if s.State != SessionComposing && s.State != SessionEditing {
		return fmt.Errorf("%w: cannot submit from %s", ErrInvalidTransition, s.State)
	}

	s.inFlight = true

	return nil
}

// BeginDelete marks a delete as in flight. Deletes happen directly from
// Viewing and do not pass through a form state.
func (s *LedgerSession) BeginDelete(entry *AdvanceEntry) error {
	if err := s.requireIdle(SessionViewing); err != nil {
		return err
	}

	if !entry.BelongsTo(s.PartnerKind, s.PartnerID) {
		return ErrPartnerMismatch
	}

	s.inFlight = true

	return nil
}

// Resolve records the persistence result of the in-flight operation.
// Success returns the session to Viewing; failure leaves it where it was so
// the user can correct and retry.
func (s *LedgerSession) Resolve(succeeded bool) error {
	if !s.inFlight {
		return fmt.Errorf("%w: no operation in flight", ErrInvalidTransition)
	}

	s.inFlight = false

	if succeeded {
		s.State = SessionViewing
		s.Editing = nil
	}

	return nil
}

func (s *LedgerSession) requireIdle(state SessionState) error {
	if s.inFlight {
		return ErrOperationInFlight
	}

	if s.State != state {
		return fmt.Errorf("%w: expected %s, session is %s", ErrInvalidTransition, state, s.State)
	}

	return nil
}
