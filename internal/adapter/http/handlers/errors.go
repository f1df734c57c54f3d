package handlers

import (
	"errors"
	"net/http"

	"tasklist/internal/adapter/http/middleware"
	"tasklist/internal/core/domain"
	"tasklist/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto a status code and a translated body.
// Anything that is not a validation or not-found error is logged and
// reported as failKey.
func respondError(c *gin.Context, err error, invalidKey, failKey string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	switch {
	case domain.IsValidationError(err):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateErrorWithDetails(http.StatusBadRequest, invalidKey, lang, err.Error()),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgProjectNotFound, lang),
		)
	default:
		fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		zap.L().Error(failKey, fields...)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failKey, lang),
		)
	}
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}
