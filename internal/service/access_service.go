package service

import (
	appErrors "github.com/celtic-scaffold/audit-api/pkg/errors"
)

// Access gate. Two states, Locked and Unlocked, and a single transition:
// a successful unlock attempt. There is no re-lock operation, and the
// unlocked flag persists with the rest of the state across restarts.

// AttemptUnlock compares the entered code against the stored one: exact
// string match, no trimming, no normalization, no lockout. On mismatch
// the state is left untouched and ErrInvalidPIN is returned.
func (s *AuditService) AttemptUnlock(entered string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entered != s.state.PIN {
		s.metrics.ObserveUnlock(false)
		return appErrors.ErrInvalidPIN
	}
	s.metrics.ObserveUnlock(true)
	if !s.state.Unlocked {
		s.state.Unlocked = true
		s.persist("unlock")
	}
	return nil
}

// SetUnlockCode replaces the stored PIN immediately. The current session
// keeps whatever gate state it already has; nobody is re-authenticated.
func (s *AuditService) SetUnlockCode(pin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.PIN = pin
	s.persist("set_pin")
}

// Unlocked reports the current gate state.
func (s *AuditService) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Unlocked
}
