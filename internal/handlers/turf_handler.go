package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/turf-booking/internal/httperr"
	"github.com/BruksfildServices01/turf-booking/internal/httpresp"
	ucTurf "github.com/BruksfildServices01/turf-booking/internal/usecase/turf"
)

// TurfHandler serves the public catalogue.
type TurfHandler struct {
	browse *ucTurf.BrowseTurfs
}

func NewTurfHandler(browse *ucTurf.BrowseTurfs) *TurfHandler {
	return &TurfHandler{browse: browse}
}

// GET /api/turfs?city=
func (h *TurfHandler) List(c *gin.Context) {
	turfs, err := h.browse.List(c.Request.Context(), c.Query("city"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, turfs)
}

// GET /api/turfs/latest
func (h *TurfHandler) Latest(c *gin.Context) {
	turfs, err := h.browse.Latest(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, turfs)
}

// GET /api/turfs/:id
func (h *TurfHandler) Detail(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	detail, err := h.browse.Detail(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, detail)
}
