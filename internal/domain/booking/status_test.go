package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/models"
)

func TestTransitionGuards(t *testing.T) {
	require.NoError(t, booking.CanConfirm(booking.StatusPending))
	require.Error(t, booking.CanConfirm(booking.StatusConfirmed))
	require.Error(t, booking.CanConfirm(booking.StatusCancelled))

	require.NoError(t, booking.CanCancel(booking.StatusPending))
	require.NoError(t, booking.CanCancel(booking.StatusConfirmed))
	require.Error(t, booking.CanCancel(booking.StatusCompleted))
	require.Error(t, booking.CanCancel(booking.StatusCancelled))

	require.NoError(t, booking.CanComplete(booking.StatusConfirmed))
	require.Error(t, booking.CanComplete(booking.StatusPending))
}

func TestConfirmThenComplete(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusPending)}
	now := time.Now()

	require.NoError(t, booking.Confirm(b, now))
	require.Equal(t, string(booking.StatusConfirmed), b.Status)
	require.NotNil(t, b.ConfirmedAt)

	require.NoError(t, booking.Complete(b, now))
	require.Equal(t, string(booking.StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)
}

func TestCancelCancelledBookingFails(t *testing.T) {
	b := &models.Booking{Status: string(booking.StatusCancelled)}

	err := booking.Cancel(b, time.Now())
	require.Error(t, err)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
	require.Nil(t, b.CancelledAt)
}
