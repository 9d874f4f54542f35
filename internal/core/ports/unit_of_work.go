package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes repository calls to one transaction.
//
// Repositories obtained before Begin, or after Commit/Rollback, operate outside
// any transaction; single-read queries use them that way, while queries that
// combine several reads start BeginReadOnly. Rollback after Commit
// is harmless and returns an error the caller may ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// BeginReadOnly starts a transaction in which every read sees the same
	// committed snapshot. Writes through its repositories fail. End it with
	// Rollback.
	BeginReadOnly(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	DroneRepository() DroneRepository

	MedicationRepository() MedicationRepository

	EventLogRepository() EventLogRepository
}
