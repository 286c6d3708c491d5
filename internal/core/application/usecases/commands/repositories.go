// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, gateway orchestration, and persistence.
//
// A command that both writes locally and calls the shipping gateway always
// commits the local transaction first; the gateway call sits outside any
// transaction and failures after a commit are compensated with a status
// write, never rolled back.
package commands

import (
	"context"

	"shiprelay/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a
	// transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions across both order and shipment aggregates.
	// Used when aggregator acceptance of an order spawns a child shipment in
	// the same transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
