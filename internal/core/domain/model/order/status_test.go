package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"pending is valid", order.Pending, false},
		{"in transit is valid", order.InTransit, false},
		{"delivered is valid", order.Delivered, false},
		{"cancelled is valid", order.Cancelled, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "InTransit", order.InTransit.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Cancelled", order.Cancelled.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Claim(t *testing.T) {
	t.Run("pending can be claimed", func(t *testing.T) {
		next, err := order.Pending.Claim()

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, next)
	})

	t.Run("every other status refuses claim", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.InTransit, order.Delivered, order.Cancelled} {
			_, err := s.Claim()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in transit can be completed", func(t *testing.T) {
		next, err := order.InTransit.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("every other status refuses completion", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Pending, order.Delivered, order.Cancelled} {
			_, err := s.Complete()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("pending can be cancelled", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("every other status refuses cancellation", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.InTransit, order.Delivered, order.Cancelled} {
			_, err := s.Cancel()
			require.Error(t, err, "status %s", s)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_ValidateCanHaveRider(t *testing.T) {
	t.Run("rider requires status past pending", func(t *testing.T) {
		require.NoError(t, order.InTransit.ValidateCanHaveRider(true))
		require.NoError(t, order.Delivered.ValidateCanHaveRider(true))
		require.Error(t, order.Pending.ValidateCanHaveRider(true))
		require.Error(t, order.Cancelled.ValidateCanHaveRider(true))
	})

	t.Run("no rider requires status not past pending", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveRider(false))
		require.NoError(t, order.Cancelled.ValidateCanHaveRider(false))
		require.Error(t, order.InTransit.ValidateCanHaveRider(false))
		require.Error(t, order.Delivered.ValidateCanHaveRider(false))
	})
}
