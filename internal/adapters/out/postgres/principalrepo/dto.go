// Package principalrepo provides persistence for local API users.
package principalrepo

import (
	"time"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// PrincipalDTO represents the database structure for persisting API users.
type PrincipalDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for principal entities.
func (PrincipalDTO) TableName() string {
	return "principals"
}

func fromDomain(aggregate *principal.Principal) PrincipalDTO {
	return PrincipalDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

func toDomain(dto PrincipalDTO) (*principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return principal.NewPrincipal(id, dto.Username, dto.PasswordHash)
}
