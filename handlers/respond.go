package handlers

import (
	"errors"
	"net/http"

	"ablecare/services/resource"
	"ablecare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the HTTP status and the
// {success:false, message} body. Unclassified errors are logged and surfaced
// as an opaque 500.
func respondError(c *gin.Context, err error) {
	var (
		validationErr resource.ValidationError
		conflictErr   resource.ConflictError
		notFoundErr   resource.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &conflictErr):
		utils.JSONError(c, http.StatusBadRequest, conflictErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Error())
	default:
		zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
