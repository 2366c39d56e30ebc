package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/localskill/marketplace-api/internal/domain/booking"
	"github.com/localskill/marketplace-api/internal/dto"
	"github.com/localskill/marketplace-api/internal/httperr"
	"github.com/localskill/marketplace-api/internal/httpresp"
	"github.com/localskill/marketplace-api/internal/middleware"
	ucBooking "github.com/localskill/marketplace-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create   *ucBooking.CreateBooking
	confirm  *ucBooking.ConfirmBooking
	complete *ucBooking.CompleteBooking
	cancel   *ucBooking.CancelBooking
	listMine *ucBooking.ListBookingsForClient
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	confirm *ucBooking.ConfirmBooking,
	complete *ucBooking.CompleteBooking,
	cancel *ucBooking.CancelBooking,
	listMine *ucBooking.ListBookingsForClient,
) *BookingHandler {
	return &BookingHandler{
		create:   create,
		confirm:  confirm,
		complete: complete,
		cancel:   cancel,
		listMine: listMine,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	StartTime  string `json:"start_time" binding:"required"` // RFC 3339
	Notes      string `json:"notes"`
}

// ======================================================
// CREATE (CLIENT)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ClientID:   clientID,
			ProviderID: req.ProviderID,
			ServiceID:  req.ServiceID,
			StartTime:  req.StartTime,
			Notes:      req.Notes,
		},
	)

	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			httperr.BadRequest(c, ve.Code, "Booking request rejected.")
			return
		}

		if domain.IsPersistence(err) {
			log.Println("booking write failed:", err)
			httperr.Internal(c, "booking_write_failed", "Failed to create booking, please retry.")
			return
		}

		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// CLIENT DASHBOARD
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextProfileID).(uint)

	bookings, err := h.listMine.Execute(c.Request.Context(), clientID)
	if err != nil {
		log.Println("booking listing failed:", err)
		httpresp.List(c, []dto.BookingListDTO{})
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// PROVIDER TRANSITIONS
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, "confirm")
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, "complete")
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, "cancel")
}

func (h *BookingHandler) transition(c *gin.Context, action string) {
	actorID := c.MustGet(middleware.ContextProfileID).(uint)
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	if providerID == 0 {
		httperr.Forbidden(c, "not_a_provider", "Only providers can manage bookings.")
		return
	}

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking identifier.")
		return
	}
	bookingID := uint(id)

	ctx := c.Request.Context()

	var result any
	switch action {
	case "confirm":
		result, err = h.confirm.Execute(ctx, providerID, actorID, bookingID)
	case "complete":
		result, err = h.complete.Execute(ctx, providerID, actorID, bookingID)
	case "cancel":
		result, err = h.cancel.Execute(ctx, providerID, actorID, bookingID)
	}

	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}

		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Booking is not in a state that allows this change.")
			return
		}

		log.Println("booking transition failed:", err)
		httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
		return
	}

	c.JSON(http.StatusOK, result)
}
