package order_test

import (
	"testing"

	"shiprelay/internal/core/domain/model/order"
	"shiprelay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "created", order.Created.String())
	assert.Equal(t, "submitted", order.Submitted.String())
	assert.Equal(t, "failed", order.Failed.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("valid values round-trip", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Submitted, order.Failed} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Created.Validate())
	require.NoError(t, order.Submitted.Validate())
	require.NoError(t, order.Failed.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_Submit(t *testing.T) {
	t.Run("created can submit", func(t *testing.T) {
		next, err := order.Created.Submit()
		require.NoError(t, err)
		assert.Equal(t, order.Submitted, next)
	})

	t.Run("final states cannot submit", func(t *testing.T) {
		for _, s := range []order.Status{order.Submitted, order.Failed, order.Unknown} {
			_, err := s.Submit()
			require.Error(t, err)
		}
	})
}

func TestStatus_Fail(t *testing.T) {
	t.Run("created can fail", func(t *testing.T) {
		next, err := order.Created.Fail()
		require.NoError(t, err)
		assert.Equal(t, order.Failed, next)
	})

	t.Run("final states cannot fail", func(t *testing.T) {
		for _, s := range []order.Status{order.Submitted, order.Failed, order.Unknown} {
			_, err := s.Fail()
			require.Error(t, err)
		}
	})
}
