// Package crypto implements the password hashing and session token ports.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2Params defines the memory and CPU cost factors for Argon2id.
type Argon2Params struct {
	Memory      uint32 // RAM usage in KiB
	Iterations  uint32 // passes over the memory
	Parallelism uint8  // threads
	SaltLength  uint32 // random salt length in bytes
	KeyLength   uint32 // derived key length in bytes
}

// DefaultArgon2Params are sized for a typical cloud container.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// Argon2Hasher implements the PasswordHasher port using Argon2id with
// PHC-encoded hash strings.
type Argon2Hasher struct {
	params Argon2Params
}

// NewArgon2Hasher creates a hasher with the given cost parameters.
func NewArgon2Hasher(params Argon2Params) *Argon2Hasher {
	return &Argon2Hasher{params: params}
}

// Hash derives an encoded Argon2id hash from a plaintext password. A fresh
// random salt is generated on every call, so identical passwords yield
// different hashes.
func (h *Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("crypto/rand failed: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		h.params.Iterations,
		h.params.Memory,
		h.params.Parallelism,
		h.params.KeyLength,
	)

	// PHC format carries the params, so hashes stay verifiable after the
	// defaults change.
	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// Verify reports whether the plaintext password matches the encoded hash.
// The hash is recomputed with the salt and params extracted from the encoded
// string and compared in constant time.
func (h *Argon2Hasher) Verify(password, encodedHash string) (bool, error) {
	params, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return false, fmt.Errorf("invalid hash format: %w", err)
	}

	otherHash := argon2.IDKey(
		[]byte(password),
		salt,
		params.Iterations,
		params.Memory,
		params.Parallelism,
		params.KeyLength,
	)

	return subtle.ConstantTimeCompare(hash, otherHash) == 1, nil
}

// decodeHash parses a "$argon2id$v=19$m=65536,t=3,p=2$..." string.
func decodeHash(encodedHash string) (params Argon2Params, salt, hash []byte, err error) {
	vals := strings.Split(encodedHash, "$")
	if len(vals) != 6 {
		return Argon2Params{}, nil, nil, fmt.Errorf("hash has wrong number of parts")
	}

	var version int
	if _, err = fmt.Sscanf(vals[2], "v=%d", &version); err != nil {
		return Argon2Params{}, nil, nil, err
	}
	if version != argon2.Version {
		return Argon2Params{}, nil, nil, fmt.Errorf("incompatible argon2 version %d", version)
	}

	if _, err = fmt.Sscanf(vals[3], "m=%d,t=%d,p=%d",
		&params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return Argon2Params{}, nil, nil, err
	}

	if salt, err = base64.RawStdEncoding.DecodeString(vals[4]); err != nil {
		return Argon2Params{}, nil, nil, err
	}

	if hash, err = base64.RawStdEncoding.DecodeString(vals[5]); err != nil {
		return Argon2Params{}, nil, nil, err
	}
	params.KeyLength = uint32(len(hash))

	return params, salt, hash, nil
}
