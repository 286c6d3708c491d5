package commands

import (
	"errors"

	"shiprelay/internal/pkg/errs"
	"shiprelay/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
)

// LoginCommand carries the credentials of an API user requesting a session
// token.
type LoginCommand struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a validated login command.
func NewLoginCommand(username, password string) (LoginCommand, error) {
	if err := errors.Join(
		requireNonEmpty("username", username),
		requireNonEmpty("password", password),
	); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func requireNonEmpty(paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Username returns the login name.
func (c LoginCommand) Username() string {
	return c.username
}

// Password returns the plaintext password. It is verified against the stored
// hash and never persisted.
func (c LoginCommand) Password() string {
	return c.password
}
