package handlers

import (
	"net/http"
	"strconv"

	"ablecare/models"
	"ablecare/services/resource"

	"github.com/gin-gonic/gin"
)

// PublicResourceHandler serves the unauthenticated read-only mirror for one
// resource kind.
type PublicResourceHandler struct {
	Svc  resource.PublicService
	Kind models.Kind
}

// NewPublicResourceHandler creates a PublicResourceHandler for the given kind.
func NewPublicResourceHandler(svc resource.PublicService, kind models.Kind) *PublicResourceHandler {
	return &PublicResourceHandler{Svc: svc, Kind: kind}
}

// ListHandler returns one page of active resources.
func (h *PublicResourceHandler) ListHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	data, meta, err := h.Svc.ListActive(c.Request.Context(), h.Kind, page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	if data == nil {
		data = []models.ContentResource{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": meta})
}

// GetBySlugHandler returns one active resource and counts the view.
func (h *PublicResourceHandler) GetBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")

	res, err := h.Svc.GetBySlug(c.Request.Context(), h.Kind, slug)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": res})
}
