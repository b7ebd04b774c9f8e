package password_test

import (
	"testing"

	"github.com/fintrack/fintrack/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_FreshSaltPerCall(t *testing.T) {
	t.Parallel()
	h := password.NewHasher(bcrypt.MinCost)

	first, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	second, err := h.Hash("s3cret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, digest := range []string{first, second} {
		ok, err := h.Verify("s3cret-password", digest)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = h.Verify("wrong-password", digest)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()
	h := password.NewHasher(bcrypt.MinCost)

	ok, err := h.Verify("anything", "not-a-bcrypt-digest")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	t.Parallel()
	// An out-of-range cost falls back to the default instead of failing
	// every Hash call.
	h := password.NewHasher(99)
	digest, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost)
}
