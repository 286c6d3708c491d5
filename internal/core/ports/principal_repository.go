package ports

import (
	"context"

	"shiprelay/internal/core/domain/model/principal"
)

// PrincipalRepository defines the persistence contract for local API users.
// Principals are written once at seeding time and read on every login, so the
// repository lives outside the unit of work.
type PrincipalRepository interface {
	// Add persists a new principal. Returns a ConflictError when the
	// username is already taken.
	Add(ctx context.Context, aggregate *principal.Principal) error

	// GetByUsername retrieves a principal by login name.
	// Returns an ObjectNotFoundError when no such principal exists.
	GetByUsername(ctx context.Context, username string) (*principal.Principal, error)
}
