package handlers

import (
	"errors"
	"net/http"

	"ablecare/middleware"
	"ablecare/services/admin"
	"ablecare/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves admin authentication and profile endpoints.
type AuthHandler struct {
	Svc admin.AdminService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc admin.AdminService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler exchanges email and password for a bearer token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	token, account, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"token": token, "admin": account},
	})
}

// GetProfileHandler returns the authenticated admin's profile.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	adminID := c.GetString(middleware.AdminIDKey)

	account, err := h.Svc.GetProfile(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": account})
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateProfileHandler updates the authenticated admin's name and email.
func (h *AuthHandler) UpdateProfileHandler(c *gin.Context) {
	adminID := c.GetString(middleware.AdminIDKey)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.Svc.UpdateProfile(c.Request.Context(), adminID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    account,
		"message": "Profile updated successfully",
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ChangePasswordHandler rotates the authenticated admin's password.
func (h *AuthHandler) ChangePasswordHandler(c *gin.Context) {
	adminID := c.GetString(middleware.AdminIDKey)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "current and new passwords are required")
		return
	}

	err := h.Svc.ChangePassword(c.Request.Context(), adminID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusBadRequest, "Current password is incorrect")
			return
		}
		if errors.Is(err, admin.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Admin not found")
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}
