package controllers

import (
	"errors"
	"net/http"

	"wwcrm-backend/services"
	"wwcrm-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
