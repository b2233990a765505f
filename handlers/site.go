package handlers

import (
	"net/http"
	"strconv"

	"ablecare/models"
	"ablecare/services/site"
	"ablecare/utils"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the settings, contact info and SEO metadata endpoints.
type SiteHandler struct {
	Svc site.SiteService
}

// NewSiteHandler creates a new SiteHandler instance.
func NewSiteHandler(svc site.SiteService) *SiteHandler {
	return &SiteHandler{Svc: svc}
}

// GetSettingsHandler returns the site settings document.
func (h *SiteHandler) GetSettingsHandler(c *gin.Context) {
	settings, err := h.Svc.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// SaveSettingsHandler upserts site settings from a multipart form; logo and
// favicon files are optional replacements.
func (h *SiteHandler) SaveSettingsHandler(c *gin.Context) {
	var files formFiles
	defer files.Close()

	maintenance, _ := strconv.ParseBool(c.DefaultPostForm("maintenanceMode", "false"))
	in := site.SettingsInput{
		Settings: models.SiteSettings{
			SiteName:        c.PostForm("siteName"),
			Tagline:         c.PostForm("tagline"),
			LogoURL:         c.PostForm("existingLogo"),
			FaviconURL:      c.PostForm("existingFavicon"),
			FooterText:      c.PostForm("footerText"),
			MaintenanceMode: maintenance,
		},
	}
	if fh, err := c.FormFile("logo"); err == nil && fh.Size > 0 {
		file, err := files.open(fh)
		if err != nil {
			respondError(c, err)
			return
		}
		in.Logo = file
	}
	if fh, err := c.FormFile("favicon"); err == nil && fh.Size > 0 {
		file, err := files.open(fh)
		if err != nil {
			respondError(c, err)
			return
		}
		in.Favicon = file
	}

	settings, err := h.Svc.SaveSettings(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true, "data": settings, "message": "Settings saved successfully",
	})
}

// GetContactHandler returns the contact info document.
func (h *SiteHandler) GetContactHandler(c *gin.Context) {
	contact, err := h.Svc.GetContact(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
}

// SaveContactHandler upserts the contact info document.
func (h *SiteHandler) SaveContactHandler(c *gin.Context) {
	var contact models.ContactInfo
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.Svc.SaveContact(c.Request.Context(), contact)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true, "data": saved, "message": "Contact info saved successfully",
	})
}

// GetSEOPageHandler returns the SEO metadata for one static page.
func (h *SiteHandler) GetSEOPageHandler(c *gin.Context) {
	seo, err := h.Svc.GetSEOPage(c.Request.Context(), c.Param("page"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": seo})
}

// SaveSEOPageHandler upserts the SEO metadata for one static page.
func (h *SiteHandler) SaveSEOPageHandler(c *gin.Context) {
	var seo models.SEOPage
	if err := c.ShouldBindJSON(&seo); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	seo.Page = c.Param("page")

	saved, err := h.Svc.SaveSEOPage(c.Request.Context(), seo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true, "data": saved, "message": "SEO metadata saved successfully",
	})
}
