package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"ablecare/models"
	"ablecare/services/resource"

	"github.com/gin-gonic/gin"
)

// ResourceHandler serves the admin CRUD endpoints for one resource kind. It
// is instantiated once per kind over the shared lifecycle service.
type ResourceHandler struct {
	Svc  resource.LifecycleService
	Kind models.Kind
}

// NewResourceHandler creates a ResourceHandler for the given kind.
func NewResourceHandler(svc resource.LifecycleService, kind models.Kind) *ResourceHandler {
	return &ResourceHandler{Svc: svc, Kind: kind}
}

// ListHandler returns one admin page of resources.
func (h *ResourceHandler) ListHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := c.Query("status")

	data, meta, err := h.Svc.List(c.Request.Context(), h.Kind, page, limit, status)
	if err != nil {
		respondError(c, err)
		return
	}
	if data == nil {
		data = []models.ContentResource{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": meta})
}

// CreateHandler creates a resource from a multipart form.
func (h *ResourceHandler) CreateHandler(c *gin.Context) {
	var files formFiles
	defer files.Close()

	in, err := parseCreateForm(c, h.Kind, &files)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), h.Kind, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
		"message": fmt.Sprintf("%s created successfully", h.Kind.Label),
	})
}

// UpdateHandler updates a resource from a multipart form.
func (h *ResourceHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var files formFiles
	defer files.Close()

	in, err := parseUpdateForm(c, h.Kind, &files)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := h.Svc.Update(c.Request.Context(), h.Kind, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
		"message": fmt.Sprintf("%s updated successfully", h.Kind.Label),
	})
}

// DeleteHandler removes a resource.
func (h *ResourceHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), h.Kind, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%s deleted successfully", h.Kind.Label),
	})
}
