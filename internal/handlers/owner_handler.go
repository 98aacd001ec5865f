package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/httpresp"
	"github.com/BruksfildServices01/turf-booking/internal/middleware"
	ucSlot "github.com/BruksfildServices01/turf-booking/internal/usecase/slot"
	ucTurf "github.com/BruksfildServices01/turf-booking/internal/usecase/turf"
)

// OwnerHandler serves the turf owner's management endpoints.
type OwnerHandler struct {
	turfs      *ucTurf.ManageTurfs
	dashboard  *ucTurf.OwnerDashboard
	createSlot *ucSlot.CreateSlot
	deleteSlot *ucSlot.DeleteSlot
}

func NewOwnerHandler(
	turfs *ucTurf.ManageTurfs,
	dashboard *ucTurf.OwnerDashboard,
	createSlot *ucSlot.CreateSlot,
	deleteSlot *ucSlot.DeleteSlot,
) *OwnerHandler {
	return &OwnerHandler{
		turfs:      turfs,
		dashboard:  dashboard,
		createSlot: createSlot,
		deleteSlot: deleteSlot,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// TurfRequest fields left out of a PATCH keep their stored values.
type TurfRequest struct {
	Name         *string  `json:"name"`
	City         *string  `json:"city"`
	Address      *string  `json:"address"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	PricePerHour *float64 `json:"price_per_hour"`
}

func (r TurfRequest) input() ucTurf.TurfInput {
	return ucTurf.TurfInput{
		Name:         r.Name,
		City:         r.City,
		Address:      r.Address,
		Description:  r.Description,
		Image:        r.Image,
		PricePerHour: r.PricePerHour,
	}
}

type SlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ======================================================
// DASHBOARD
// ======================================================

// GET /api/owner/dashboard
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

// GET /api/owner/turfs/:id/revenue
func (h *OwnerHandler) TurfRevenue(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	revenue, err := h.dashboard.TotalRevenue(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{
		"turf_id":       id,
		"total_revenue": revenue,
	})
}

// ======================================================
// TURFS
// ======================================================

// POST /api/owner/turfs
func (h *OwnerHandler) CreateTurf(c *gin.Context) {
	var req TurfRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.turfs.Create(c.Request.Context(), middleware.UserID(c), req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, t)
}

// PATCH /api/owner/turfs/:id
func (h *OwnerHandler) UpdateTurf(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req TurfRequest
	if !bindJSON(c, &req) {
		return
	}

	t, err := h.turfs.Update(c.Request.Context(), middleware.UserID(c), id, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, t)
}

// DELETE /api/owner/turfs/:id
func (h *OwnerHandler) DeleteTurf(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.turfs.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// SLOTS
// ======================================================

// POST /api/owner/turfs/:id/slots
func (h *OwnerHandler) CreateSlot(c *gin.Context) {
	turfID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req SlotRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.createSlot.Execute(c.Request.Context(), ucSlot.CreateSlotInput{
		OwnerID:   middleware.UserID(c),
		TurfID:    turfID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, s)
}

// DELETE /api/owner/slots/:id
func (h *OwnerHandler) DeleteSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.deleteSlot.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
