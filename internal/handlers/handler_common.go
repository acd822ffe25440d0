package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luzyverdad/lodge_management_app/internal/apperrors"
	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps engine errors to HTTP status codes and writes the
// JSON error body. Unrecognized errors become opaque 500s so internals never
// leak to clients.
func respondWithError(c *gin.Context, logger *slog.Logger, err error) {
	var appErr *apperrors.AppError
	message := "request failed"
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: message})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: message})
	case errors.Is(err, apperrors.ErrPreconditionFailed):
		c.JSON(http.StatusPreconditionFailed, ErrorResponse{Error: message})
	default:
		logger.Error("Unhandled error in handler", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// resolveActor loads the authenticated member's acting identity. On failure it
// writes the response itself and returns false.
func resolveActor(c *gin.Context, memberService portssvc.MemberSvcFacade) (domain.Actor, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	memberID, ok := middleware.GetMemberIDFromContext(c)
	if !ok {
		logger.Error("Member ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return domain.Actor{}, false
	}

	actor, err := memberService.ResolveActor(c.Request.Context(), memberID)
	if err != nil {
		logger.Warn("Failed to resolve acting member", slog.String("member_id", memberID), slog.String("error", err.Error()))
		respondWithError(c, logger, err)
		return domain.Actor{}, false
	}
	return actor, true
}
