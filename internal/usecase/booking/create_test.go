package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ttsbooking/consult-platform/internal/auth"
	domain "github.com/ttsbooking/consult-platform/internal/domain/booking"
	"github.com/ttsbooking/consult-platform/internal/dto"
	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/models"
	usecase "github.com/ttsbooking/consult-platform/internal/usecase/booking"
)

// fakeRepo keeps bookings in memory so use cases can be exercised without
// a database.
type fakeRepo struct {
	services map[uint]*models.Service
	bookings map[uint]*models.Booking
	nextID   uint

	created int
	updated int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: make(map[uint]*models.Service),
		bookings: make(map[uint]*models.Booking),
		nextID:   1,
	}
}

func (f *fakeRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	b.ID = f.nextID
	f.nextID++
	f.bookings[b.ID] = b
	f.created++
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	f.updated++
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uint) ([]dto.UserBookingItem, error) {
	var out []dto.UserBookingItem
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, dto.UserBookingItem{ID: b.ID, Status: b.Status})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByConsultant(_ context.Context, _ uint) ([]dto.ConsultantBookingItem, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func member(id uint) auth.Principal {
	return auth.Principal{UserID: id, Email: "user@example.com", Role: models.RoleUser}
}

func admin() auth.Principal {
	return auth.Principal{UserID: 99, Email: "admin@example.com", Role: models.RoleAdmin}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.services[7] = &models.Service{ID: 7, Title: "Tax review", IsActive: true}

	uc := usecase.NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), member(3), usecase.CreateBookingInput{
		ServiceID: 7,
		Date:      "2026-10-01",
		Time:      "14:30",
		Notes:     "first session",
	})
	require.NoError(t, err)
	require.Equal(t, uint(3), b.UserID)
	require.Equal(t, "pending", b.Status)
	require.Equal(t, 1, repo.created)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), member(3), usecase.CreateBookingInput{
		ServiceID: 7,
	})
	require.True(t, httperr.IsBusiness(err, "missing_fields"))
	require.Zero(t, repo.created)
}

func TestCreateBooking_BadDate(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), member(3), usecase.CreateBookingInput{
		ServiceID: 7,
		Date:      "01/10/2026",
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), member(3), usecase.CreateBookingInput{
		ServiceID: 404,
		Date:      "2026-10-01",
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestCreateBooking_ForAnotherUser(t *testing.T) {
	repo := newFakeRepo()
	repo.services[7] = &models.Service{ID: 7, IsActive: true}
	uc := usecase.NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), member(3), usecase.CreateBookingInput{
		UserID:    4,
		ServiceID: 7,
		Date:      "2026-10-01",
		Time:      "14:30",
	})
	require.True(t, httperr.IsBusiness(err, "user_mismatch"))

	// Admins may book on behalf of any member.
	b, err := uc.Execute(context.Background(), admin(), usecase.CreateBookingInput{
		UserID:    4,
		ServiceID: 7,
		Date:      "2026-10-01",
		Time:      "14:30",
	})
	require.NoError(t, err)
	require.Equal(t, uint(4), b.UserID)
}

func TestConfirmBooking_Lifecycle(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{ID: 1, UserID: 3, Status: "pending"}

	confirm := usecase.NewConfirmBooking(repo, nil)
	complete := usecase.NewCompleteBooking(repo, nil)

	b, err := confirm.Execute(context.Background(), admin(), 1)
	require.NoError(t, err)
	require.Equal(t, "confirmed", b.Status)
	require.NotNil(t, b.ConfirmedAt)

	// Confirming twice violates the state machine.
	_, err = confirm.Execute(context.Background(), admin(), 1)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))

	b, err = complete.Execute(context.Background(), admin(), 1)
	require.NoError(t, err)
	require.Equal(t, "completed", b.Status)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := newFakeRepo()
	confirm := usecase.NewConfirmBooking(repo, nil)

	_, err := confirm.Execute(context.Background(), admin(), 5)
	require.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestCancelBooking_Ownership(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{ID: 1, UserID: 3, Status: "pending"}

	cancel := usecase.NewCancelBooking(repo, nil)

	// A different member cannot cancel someone else's booking.
	_, err := cancel.Execute(context.Background(), member(8), 1)
	require.True(t, httperr.IsBusiness(err, "user_mismatch"))

	b, err := cancel.Execute(context.Background(), member(3), 1)
	require.NoError(t, err)
	require.Equal(t, "cancelled", b.Status)
	require.NotNil(t, b.CancelledAt)
}

func TestCancelBooking_ConsultantMayCancel(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{ID: 1, UserID: 3, Status: "confirmed"}

	cancel := usecase.NewCancelBooking(repo, nil)
	consultant := auth.Principal{UserID: 50, Role: models.RoleConsultant}

	b, err := cancel.Execute(context.Background(), consultant, 1)
	require.NoError(t, err)
	require.Equal(t, "cancelled", b.Status)
}

func TestListBookingsByUser_SelfOrAdmin(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings[1] = &models.Booking{ID: 1, UserID: 3, Status: "pending"}

	list := usecase.NewListBookingsByUser(repo)

	_, err := list.Execute(context.Background(), member(8), 3)
	require.True(t, httperr.IsBusiness(err, "user_mismatch"))

	items, err := list.Execute(context.Background(), member(3), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = list.Execute(context.Background(), admin(), 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
}
