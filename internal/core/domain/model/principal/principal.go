// Package principal contains the Principal entity: a locally-stored API user
// whose credentials are verified before a session token is minted. The relay
// deliberately does not delegate caller authentication to the external
// aggregator.
package principal

import (
	"errors"

	"shiprelay/internal/core/domain/model/kernel"
	"shiprelay/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when a Principal instance was not
// created through NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal")

// Principal is a local API user. The password is stored only as an Argon2id
// hash; the entity never sees the plaintext.
type Principal struct {
	id           kernel.UUID
	username     string
	passwordHash string

	isConstructed bool
}

// NewPrincipal creates a validated principal. The passwordHash must already
// be an encoded hash; hashing is the caller's concern.
func NewPrincipal(id kernel.UUID, username, passwordHash string) (*Principal, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("password hash")
	}

	return &Principal{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		isConstructed: true,
	}, nil
}

// Validate ensures the Principal instance was properly constructed.
func (p *Principal) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the principal's unique identifier.
func (p *Principal) ID() kernel.UUID {
	return p.id
}

// Username returns the login name, unique across principals.
func (p *Principal) Username() string {
	return p.username
}

// PasswordHash returns the encoded Argon2id password hash.
func (p *Principal) PasswordHash() string {
	return p.passwordHash
}
