package handlers

import (
	"net/http"

	"ablecare/models"
	"ablecare/services/site"

	"github.com/gin-gonic/gin"
)

// BannerHandler serves the admin banner endpoints plus the public active
// listing.
type BannerHandler struct {
	Svc site.SiteService
}

// NewBannerHandler creates a new BannerHandler instance.
func NewBannerHandler(svc site.SiteService) *BannerHandler {
	return &BannerHandler{Svc: svc}
}

func parseBannerForm(c *gin.Context, files *formFiles) (site.BannerInput, error) {
	in := site.BannerInput{
		Title:         c.PostForm("title"),
		Subtitle:      c.PostForm("subtitle"),
		LinkURL:       c.PostForm("linkUrl"),
		Order:         parseOrder(c),
		Status:        c.PostForm("status"),
		ExistingImage: c.PostForm("existingImage"),
	}
	if fh, err := c.FormFile("image"); err == nil && fh.Size > 0 {
		file, err := files.open(fh)
		if err != nil {
			return in, err
		}
		in.Image = file
	}
	return in, nil
}

// ListHandler returns all non-deleted banners for the admin panel.
func (h *BannerHandler) ListHandler(c *gin.Context) {
	banners, err := h.Svc.ListBanners(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": banners})
}

// PublicListHandler returns the active banners for the public site.
func (h *BannerHandler) PublicListHandler(c *gin.Context) {
	banners, err := h.Svc.ActiveBanners(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if banners == nil {
		banners = []models.Banner{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": banners})
}

// CreateHandler creates a banner from a multipart form.
func (h *BannerHandler) CreateHandler(c *gin.Context) {
	var files formFiles
	defer files.Close()

	in, err := parseBannerForm(c, &files)
	if err != nil {
		respondError(c, err)
		return
	}

	banner, err := h.Svc.CreateBanner(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true, "data": banner, "message": "Banner created successfully",
	})
}

// UpdateHandler updates a banner from a multipart form.
func (h *BannerHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var files formFiles
	defer files.Close()

	in, err := parseBannerForm(c, &files)
	if err != nil {
		respondError(c, err)
		return
	}

	banner, err := h.Svc.UpdateBanner(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true, "data": banner, "message": "Banner updated successfully",
	})
}

// DeleteHandler soft-deletes a banner.
func (h *BannerHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")

	if err := h.Svc.DeleteBanner(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner deleted successfully"})
}
