package commands

import (
	"context"
	"errors"
	"time"

	"shiprelay/internal/core/ports"
	"shiprelay/internal/pkg/errs"
)

// Session is a minted API session: the bearer token and its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// LoginCommandHandler verifies an API user's credentials locally, warms the
// aggregator session, and mints a session token.
//
// Credentials are checked against the local principal store; they are never
// forwarded upstream. The aggregator is authenticated with the server's own
// credentials so the first relayed call after login does not pay the
// authentication round trip.
type LoginCommandHandler struct {
	principalRepo ports.PrincipalRepository
	hasher        ports.PasswordHasher
	signer        ports.TokenSigner
	gateway       ports.ShippingGateway
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(
	principalRepo ports.PrincipalRepository,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
	gateway ports.ShippingGateway,
) LoginCommandHandler {
	return LoginCommandHandler{
		principalRepo: principalRepo,
		hasher:        hasher,
		signer:        signer,
		gateway:       gateway,
	}
}

// Handle processes the login command.
//
// An unknown username and a wrong password both surface as the same
// UnauthorizedError, so responses do not reveal which usernames exist.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (Session, error) {
	if err := cmd.Validate(); err != nil {
		return Session{}, err
	}

	aggregate, err := h.principalRepo.GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return Session{}, errs.NewUnauthorizedError("invalid credentials")
		}
		return Session{}, err
	}

	match, err := h.hasher.Verify(cmd.Password(), aggregate.PasswordHash())
	if err != nil {
		return Session{}, err
	}
	if !match {
		return Session{}, errs.NewUnauthorizedError("invalid credentials")
	}

	// A relay that cannot authenticate upstream cannot serve the session;
	// the refusal surfaces as Unauthorized with the gateway failure as cause.
	if err = h.gateway.Authenticate(ctx); err != nil {
		return Session{}, errs.NewUnauthorizedErrorWithCause("aggregator credential exchange failed", err)
	}

	token, expiresAt, err := h.signer.Sign(aggregate.Username())
	if err != nil {
		return Session{}, err
	}

	return Session{Token: token, ExpiresAt: expiresAt}, nil
}
