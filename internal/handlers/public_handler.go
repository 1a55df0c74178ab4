package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
)

// PublicHandler serves the unauthenticated lookup endpoints: where to drop
// off an item and whether the point is open right now.
type PublicHandler struct {
	points *CollectionPointHandler
}

func NewPublicHandler(points *CollectionPointHandler) *PublicHandler {
	return &PublicHandler{points: points}
}

func (h *PublicHandler) ListCollectionPoints(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		httperr.BadRequest(c, "missing_city", "Informe a cidade.")
		return
	}

	points, err := h.points.uc.List.Execute(c.Request.Context(), domain.ListFilter{
		City:       city,
		Query:      strings.TrimSpace(c.Query("query")),
		OnlyActive: true,
	})
	if err != nil {
		h.points.writeError(c, err, "failed_to_list_collection_points")
		return
	}

	httpresp.List(c, points)
}

func (h *PublicHandler) Nearby(c *gin.Context) {
	h.points.Nearby(c)
}

func (h *PublicHandler) Status(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.points.uc.Loader.Get(c.Request.Context(), id)
	if err != nil {
		h.points.writeError(c, err, "failed_to_get_status")
		return
	}
	if !p.Active {
		h.points.writeError(c, domain.ErrNotFound, "")
		return
	}

	h.points.Status(c)
}
