// Package service implements the role-gated operations over the restaurant
// state. Every mutating method runs the same protocol: authorize, load and
// validate, mutate, persist, append exactly one audit entry. A call that
// fails at any step leaves the stores and the audit chain untouched.
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/monitoring"
)

// Failure taxonomy. Callers classify with errors.Is; the wrapped message
// carries the operation and entity identity for logging.
var (
	// ErrUnauthorized is returned before any lookup when the role lacks
	// the capability. Never recorded in the audit chain.
	ErrUnauthorized = errors.New("operation not permitted")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvariant is returned when a domain rule would be broken:
	// over-withdrawal, payment on an unserved order, unparseable input.
	ErrInvariant = errors.New("invariant violation")
)

// Audited entity types
const (
	entityMenuItem      = "MENU_ITEM"
	entityOrder         = "ORDER"
	entityInventoryItem = "INVENTORY_ITEM"
	entityReservation   = "RESERVATION"
	entityPayment       = "PAYMENT"
)

func authorize(policy *auth.Policy, staff auth.Staff, op auth.Operation) error {
	if !policy.Allows(staff.Role, op) {
		return fmt.Errorf("%s: %w for role %s", op, ErrUnauthorized, staff.Role)
	}
	return nil
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return monitoring.OutcomeOK
	case errors.Is(err, ErrUnauthorized):
		return monitoring.OutcomeDenied
	default:
		return monitoring.OutcomeFailed
	}
}

// appendAudit records a committed mutation. Called last in every mutating
// method, after all stores have been written.
func appendAudit(chain *audit.Chain, metrics *monitoring.Metrics, staff auth.Staff, action, entityType, entityID, details string) {
	chain.Append(staff.ID, string(staff.Role), action, entityType, entityID, details)
	metrics.RecordAuditEntry(chain.Len())
}

func componentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", component)
}
