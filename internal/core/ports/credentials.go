package ports

import "time"

// PasswordHasher hashes and verifies API user passwords. Implementations
// encode the salt and cost parameters into the hash string.
type PasswordHasher interface {
	// Hash derives an encoded hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the encoded hash.
	// A malformed hash is an error; a mismatch is (false, nil).
	Verify(password, encodedHash string) (bool, error)
}

// TokenSigner mints and checks the session tokens handed to API users after
// a successful login.
type TokenSigner interface {
	// Sign mints a session token for the given username and returns it with
	// its expiry time.
	Sign(username string) (token string, expiresAt time.Time, err error)

	// Parse checks a session token and returns the username it was minted
	// for. An expired or otherwise invalid token returns an UnauthorizedError.
	Parse(token string) (username string, err error)
}
