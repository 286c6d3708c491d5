package crypto_test

import (
	"testing"
	"time"

	"shiprelay/internal/pkg/crypto"
	"shiprelay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastArgon2Params keeps the hash cheap in tests.
var fastArgon2Params = crypto.Argon2Params{
	Memory:      8 * 1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

func TestArgon2Hasher_HashAndVerify(t *testing.T) {
	hasher := crypto.NewArgon2Hasher(fastArgon2Params)

	encoded, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	match, err := hasher.Verify("s3cret", encoded)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = hasher.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestArgon2Hasher_SaltsAreUnique(t *testing.T) {
	hasher := crypto.NewArgon2Hasher(fastArgon2Params)

	first, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	second, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_Verify_MalformedHash(t *testing.T) {
	hasher := crypto.NewArgon2Hasher(fastArgon2Params)

	_, err := hasher.Verify("s3cret", "not-an-encoded-hash")
	require.Error(t, err)
}

func TestArgon2Hasher_VerifyAcrossParamChanges(t *testing.T) {
	// A hash minted with one set of cost params must verify with a hasher
	// configured differently, because the params travel in the hash string.
	old := crypto.NewArgon2Hasher(fastArgon2Params)
	encoded, err := old.Hash("s3cret")
	require.NoError(t, err)

	current := crypto.NewArgon2Hasher(crypto.DefaultArgon2Params)
	match, err := current.Verify("s3cret", encoded)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestJWTSigner_SignAndParse(t *testing.T) {
	signer := crypto.NewJWTSigner([]byte("test-secret"), time.Hour)

	token, expiresAt, err := signer.Sign("merchant")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	username, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "merchant", username)
}

func TestJWTSigner_Parse_ExpiredToken(t *testing.T) {
	signer := crypto.NewJWTSigner([]byte("test-secret"), -time.Minute)

	token, _, err := signer.Sign("merchant")
	require.NoError(t, err)

	_, err = signer.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTSigner_Parse_WrongSecret(t *testing.T) {
	signer := crypto.NewJWTSigner([]byte("test-secret"), time.Hour)
	token, _, err := signer.Sign("merchant")
	require.NoError(t, err)

	other := crypto.NewJWTSigner([]byte("other-secret"), time.Hour)
	_, err = other.Parse(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestJWTSigner_Parse_Garbage(t *testing.T) {
	signer := crypto.NewJWTSigner([]byte("test-secret"), time.Hour)

	_, err := signer.Parse("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}
