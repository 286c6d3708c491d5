package principalrepo

import (
	"context"
	"errors"

	"shiprelay/internal/core/domain/model/principal"
	"shiprelay/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormPrincipalRepository implements PrincipalRepository using GORM.
// Principals are read outside any unit of work; logins never write.
type GormPrincipalRepository struct {
	db *gorm.DB
}

// NewGormPrincipalRepository creates a new GORM principal repository.
func NewGormPrincipalRepository(db *gorm.DB) *GormPrincipalRepository {
	return &GormPrincipalRepository{db: db}
}

// Add saves a new principal to the database. A duplicate username surfaces as
// a ConflictError.
func (r *GormPrincipalRepository) Add(ctx context.Context, aggregate *principal.Principal) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause("username", aggregate.Username(), err)
		}
		return err
	}

	return nil
}

// GetByUsername retrieves a principal by login name.
func (r *GormPrincipalRepository) GetByUsername(
	ctx context.Context, username string) (*principal.Principal, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto PrincipalDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("principal", username)
		}
		return nil, err
	}

	return toDomain(dto)
}
