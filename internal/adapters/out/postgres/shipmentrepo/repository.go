package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/core/domain/model/shipment"
	"shiprelay/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database. A duplicate aggregator shipment
// id surfaces as a ConflictError, backed by the unique index.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause(
				"shipment_id", fmt.Sprintf("%d", aggregate.AggregatorShipmentID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Select("*") forces a
// full-row write so cleared fields and false booleans are persisted too. An
// AWB code already held by another shipment surfaces as a ConflictError,
// backed by the unique index on awb_code.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		var pqErr *pq.Error
		if errors.As(result.Error, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return errs.NewConflictErrorWithCause("awb_code", aggregate.AWBCode(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByAggregatorShipmentID retrieves a shipment by its aggregator-assigned
// identifier.
func (r *GormShipmentRepository) GetByAggregatorShipmentID(
	ctx context.Context, aggregatorShipmentID int64) (*shipment.Shipment, error) {
	if aggregatorShipmentID <= 0 {
		return nil, errs.NewValueIsInvalidError("aggregator shipment id")
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		First(&dto, "aggregator_shipment_id = ?", aggregatorShipmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(
				"shipment", fmt.Sprintf("%d", aggregatorShipmentID))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAWBCode retrieves a shipment by its airway bill code.
func (r *GormShipmentRepository) GetByAWBCode(
	ctx context.Context, awbCode string) (*shipment.Shipment, error) {
	if awbCode == "" {
		return nil, errs.NewValueIsRequiredError("awb code")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "awb_code = ?", awbCode).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", awbCode)
		}
		return nil, err
	}

	return toDomain(dto)
}
