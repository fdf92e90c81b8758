package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ttsbooking/consult-platform/internal/httperr"
	"github.com/ttsbooking/consult-platform/internal/httpresp"
	"github.com/ttsbooking/consult-platform/internal/middleware"
	ucBooking "github.com/ttsbooking/consult-platform/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC           *ucBooking.CreateBooking
	confirmUC          *ucBooking.ConfirmBooking
	cancelUC           *ucBooking.CancelBooking
	completeUC         *ucBooking.CompleteBooking
	listByUserUC       *ucBooking.ListBookingsByUser
	listByConsultantUC *ucBooking.ListBookingsByConsultant
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listByUserUC *ucBooking.ListBookingsByUser,
	listByConsultantUC *ucBooking.ListBookingsByConsultant,
) *BookingHandler {
	return &BookingHandler{
		createUC:           createUC,
		confirmUC:          confirmUC,
		cancelUC:           cancelUC,
		completeUC:         completeUC,
		listByUserUC:       listByUserUC,
		listByConsultantUC: listByConsultantUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID      uint   `json:"user_id"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	p := middleware.MustPrincipal(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_fields", "Missing required fields.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), p, ucBooking.CreateBookingInput{
		UserID:    req.UserID,
		ServiceID: req.ServiceID,
		Date:      req.BookingDate,
		Time:      req.BookingTime,
		Notes:     req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":    "Booking created.",
		"booking_id": b.ID,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByUser(c *gin.Context) {
	p := middleware.MustPrincipal(c)

	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	items, err := h.listByUserUC.Execute(c.Request.Context(), p, uint(userID))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"bookings": items})
}

func (h *BookingHandler) ListByConsultant(c *gin.Context) {
	consultantID, err := strconv.ParseUint(c.Param("consultant_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_consultant_id", "Invalid consultant id.")
		return
	}

	items, err := h.listByConsultantUC.Execute(c.Request.Context(), uint(consultantID))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"bookings": items})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, id uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), middleware.MustPrincipal(c), id)
	})
}

func (h *BookingHandler) transition(
	c *gin.Context,
	run func(c *gin.Context, id uint) (any, error),
) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := run(c, uint(id))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"booking": b})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func mapBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Server error.")
		return
	}

	switch code {
	case "booking_not_found":
		httperr.NotFound(c, code, "Booking not found.")
	case "service_not_found":
		httperr.BadRequest(c, code, "Service not found.")
	case "missing_fields":
		httperr.BadRequest(c, code, "Missing required fields.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Invalid booking date or time.")
	case "invalid_state":
		httperr.BadRequest(c, code, "Booking cannot change to that state.")
	case "user_mismatch":
		httperr.Forbidden(c, code, "You can only act on your own bookings.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
