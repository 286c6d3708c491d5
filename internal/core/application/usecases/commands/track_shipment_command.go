package commands

import (
	"errors"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrTrackShipmentCommandIsNotConstructed = errors.New(
		"TrackShipmentCommand must be created via NewTrackShipmentCommand constructor",
	)
)

// TrackShipmentCommand requests the latest tracking snapshot for an AWB code.
type TrackShipmentCommand struct {
	awbCode string

	guard guard.ConstructorGuard
}

// NewTrackShipmentCommand creates a validated tracking command.
func NewTrackShipmentCommand(awbCode string) (TrackShipmentCommand, error) {
	if awbCode == "" {
		return TrackShipmentCommand{}, errs.NewValueIsRequiredError("awb code")
	}

	return TrackShipmentCommand{
		awbCode: awbCode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTrackShipmentCommandIsNotConstructed)
}

// AWBCode returns the airway bill code to track.
func (c TrackShipmentCommand) AWBCode() string {
	return c.awbCode
}
