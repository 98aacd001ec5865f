package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/httpresp"
	"github.com/BruksfildServices01/turf-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/turf-booking/internal/usecase/booking"
)

type BookingHandler struct {
	book   *ucBooking.BookSlot
	cancel *ucBooking.CancelBooking
}

func NewBookingHandler(
	book *ucBooking.BookSlot,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{book: book, cancel: cancel}
}

// POST /api/slots/:id/book
func (h *BookingHandler) Book(c *gin.Context) {
	slotID, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.book.Execute(c.Request.Context(), slotID, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, booking)
}

// POST /api/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	booking, err := h.cancel.Execute(c.Request.Context(), bookingID, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, booking)
}
