package parcel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiefroqa/baruk-app/internal/core/domain/model/parcel"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   parcel.Status
		expected string
	}{
		{parcel.SearchingRider, "searching_rider"},
		{parcel.PickedUp, "picked_up"},
		{parcel.AtWarehouse, "at_warehouse"},
		{parcel.OutForDelivery, "out_for_delivery"},
		{parcel.Delivered, "delivered"},
		{parcel.Cancelled, "cancelled"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []parcel.Status{
			parcel.SearchingRider,
			parcel.PickedUp,
			parcel.AtWarehouse,
			parcel.OutForDelivery,
			parcel.Delivered,
			parcel.Cancelled,
		}

		for _, s := range statuses {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		var s parcel.Status

		require.Error(t, s.Validate())
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		s := parcel.Status(42)

		require.Error(t, s.Validate())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, parcel.Delivered.IsTerminal())
		assert.True(t, parcel.Cancelled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		assert.False(t, parcel.SearchingRider.IsTerminal())
		assert.False(t, parcel.PickedUp.IsTerminal())
		assert.False(t, parcel.AtWarehouse.IsTerminal())
		assert.False(t, parcel.OutForDelivery.IsTerminal())
	})
}

func TestStatus_PickUp(t *testing.T) {
	t.Run("should transition from searching to picked up", func(t *testing.T) {
		next, err := parcel.SearchingRider.PickUp()

		require.NoError(t, err)
		assert.Equal(t, parcel.PickedUp, next)
	})

	t.Run("should reject pick up from any other status", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.PickedUp, parcel.AtWarehouse, parcel.OutForDelivery, parcel.Delivered, parcel.Cancelled} {
			_, err := s.PickUp()

			require.Error(t, err)
			require.ErrorIs(t, err, parcel.ErrWrongStatus)
			require.ErrorIs(t, err, parcel.ErrTransitionRejected)
		}
	})
}

func TestStatus_ArriveAtWarehouse(t *testing.T) {
	t.Run("should transition from picked up", func(t *testing.T) {
		next, err := parcel.PickedUp.ArriveAtWarehouse()

		require.NoError(t, err)
		assert.Equal(t, parcel.AtWarehouse, next)
	})

	t.Run("should transition directly from searching", func(t *testing.T) {
		next, err := parcel.SearchingRider.ArriveAtWarehouse()

		require.NoError(t, err)
		assert.Equal(t, parcel.AtWarehouse, next)
	})

	t.Run("should reject from later statuses", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.AtWarehouse, parcel.OutForDelivery, parcel.Delivered, parcel.Cancelled} {
			_, err := s.ArriveAtWarehouse()

			require.ErrorIs(t, err, parcel.ErrWrongStatus)
		}
	})
}

func TestStatus_StartDelivery(t *testing.T) {
	t.Run("should transition from at warehouse", func(t *testing.T) {
		next, err := parcel.AtWarehouse.StartDelivery()

		require.NoError(t, err)
		assert.Equal(t, parcel.OutForDelivery, next)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.SearchingRider, parcel.PickedUp, parcel.OutForDelivery, parcel.Delivered, parcel.Cancelled} {
			_, err := s.StartDelivery()

			require.ErrorIs(t, err, parcel.ErrWrongStatus)
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should transition from out for delivery", func(t *testing.T) {
		next, err := parcel.OutForDelivery.Deliver()

		require.NoError(t, err)
		assert.Equal(t, parcel.Delivered, next)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.SearchingRider, parcel.PickedUp, parcel.AtWarehouse, parcel.Delivered, parcel.Cancelled} {
			_, err := s.Deliver()

			require.ErrorIs(t, err, parcel.ErrWrongStatus)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from any active status", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.SearchingRider, parcel.PickedUp, parcel.AtWarehouse, parcel.OutForDelivery} {
			next, err := s.Cancel()

			require.NoError(t, err)
			assert.Equal(t, parcel.Cancelled, next)
		}
	})

	t.Run("should reject cancel from terminal statuses", func(t *testing.T) {
		for _, s := range []parcel.Status{parcel.Delivered, parcel.Cancelled} {
			_, err := s.Cancel()

			require.ErrorIs(t, err, parcel.ErrWrongStatus)
		}
	})
}
