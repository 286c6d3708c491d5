package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a local business transaction boundary. It covers only
// database writes; calls to the external shipping gateway are never part of a
// transaction and are compensated, not rolled back.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. Repository will use the transaction started by Begin().
	OrderRepository() OrderRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current
	// transaction. Repository will use the transaction started by Begin().
	ShipmentRepository() ShipmentRepository
}
