package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// minutesHandler handles HTTP requests for a plan's minutes record.
type minutesHandler struct {
	minutesService portssvc.RitualMinutesSvcFacade
	memberService  portssvc.MemberSvcFacade
}

func newMinutesHandler(ms portssvc.RitualMinutesSvcFacade, mems portssvc.MemberSvcFacade) *minutesHandler {
	return &minutesHandler{
		minutesService: ms,
		memberService:  mems,
	}
}

// registerMinutesRoutes registers minutes routes nested under a plan.
func registerMinutesRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newMinutesHandler(services.Minutes, services.Member)

	minutes := rg.Group("/minutes")
	{
		minutes.POST("", h.createMinutes)
		minutes.GET("", h.getMinutes)
		minutes.PUT("", h.updateMinutes)
		minutes.POST("/finalize", h.finalizeMinutes)
	}
}

// createMinutes godoc
// @Summary Create the minutes of a completed plan
// @Description Creates the plan's minutes record in draft. The plan must be completed and have no minutes yet.
// @Tags minutes
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   minutes body dto.CreateMinutesRequest true "Minutes content"
// @Success 201 {object} dto.MinutesResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 412 {object} ErrorResponse "Plan not completed or minutes already exist"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/minutes [post]
func (h *minutesHandler) createMinutes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMinutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateMinutes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	minutes, err := h.minutesService.CreateMinutes(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Minutes created", slog.String("ritual_id", minutes.RitualID), slog.String("minutes_id", minutes.MinutesID))
	c.JSON(http.StatusCreated, dto.ToMinutesResponse(minutes))
}

// getMinutes godoc
// @Summary Get the minutes of a plan
// @Tags minutes
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.MinutesResponse
// @Failure 404 {object} ErrorResponse "Plan or minutes not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/minutes [get]
func (h *minutesHandler) getMinutes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	minutes, err := h.minutesService.GetMinutesByRitualID(c.Request.Context(), c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMinutesResponse(minutes))
}

// updateMinutes godoc
// @Summary Edit draft minutes
// @Description Edits the minutes record. Finalized minutes are immutable.
// @Tags minutes
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   minutes body dto.UpdateMinutesRequest true "Fields to change"
// @Success 200 {object} dto.MinutesResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or minutes not found"
// @Failure 409 {object} ErrorResponse "Minutes are finalized"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/minutes [put]
func (h *minutesHandler) updateMinutes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateMinutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMinutes", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	minutes, err := h.minutesService.UpdateMinutes(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMinutesResponse(minutes))
}

// finalizeMinutes godoc
// @Summary Finalize the minutes
// @Description Performs the one-way draft to finalized transition, after which the record is immutable.
// @Tags minutes
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.MinutesResponse
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or minutes not found"
// @Failure 409 {object} ErrorResponse "Minutes already finalized"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/minutes/finalize [post]
func (h *minutesHandler) finalizeMinutes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	minutes, err := h.minutesService.FinalizeMinutes(c.Request.Context(), actor, c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Minutes finalized", slog.String("minutes_id", minutes.MinutesID))
	c.JSON(http.StatusOK, dto.ToMinutesResponse(minutes))
}
