package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/httpresp"
	"github.com/BruksfildServices01/turf-booking/internal/middleware"
	ucAccount "github.com/BruksfildServices01/turf-booking/internal/usecase/account"
	ucBooking "github.com/BruksfildServices01/turf-booking/internal/usecase/booking"
)

type MeHandler struct {
	profile *ucAccount.Profile
	history *ucBooking.ListBookingHistory
}

func NewMeHandler(
	profile *ucAccount.Profile,
	history *ucBooking.ListBookingHistory,
) *MeHandler {
	return &MeHandler{profile: profile, history: history}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.profile.Get(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"role": user.Role(),
	})
}

func (h *MeHandler) DeleteMe(c *gin.Context) {
	if err := h.profile.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *MeHandler) Bookings(c *gin.Context) {
	bookings, err := h.history.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}
