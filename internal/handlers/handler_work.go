package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// workHandler handles HTTP requests for a plan's agenda items.
type workHandler struct {
	workService   portssvc.RitualWorkSvcFacade
	memberService portssvc.MemberSvcFacade
}

func newWorkHandler(ws portssvc.RitualWorkSvcFacade, ms portssvc.MemberSvcFacade) *workHandler {
	return &workHandler{
		workService:   ws,
		memberService: ms,
	}
}

// registerWorkRoutes registers agenda item routes nested under a plan.
func registerWorkRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkHandler(services.Work, services.Member)

	works := rg.Group("/works")
	{
		works.POST("", h.addWork)
		works.GET("", h.listWorks)
		works.PUT("/:work_id", h.updateWork)
		works.DELETE("/:work_id", h.removeWork)
		works.PATCH("/:work_id/status", h.updateWorkStatus)
	}
}

// addWork godoc
// @Summary Add an agenda item
// @Description Adds an agenda item to a plan. When order is omitted the item is appended.
// @Tags works
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   work body dto.AddWorkRequest true "Agenda item details"
// @Success 201 {object} dto.WorkResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/works [post]
func (h *workHandler) addWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	work, err := h.workService.AddWork(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Agenda item added", slog.String("ritual_id", work.RitualID), slog.String("work_id", work.WorkID))
	c.JSON(http.StatusCreated, dto.ToWorkResponse(work))
}

// listWorks godoc
// @Summary List agenda items
// @Description Retrieves the plan's agenda in display order.
// @Tags works
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.ListWorksResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/works [get]
func (h *workHandler) listWorks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	works, err := h.workService.ListWorks(c.Request.Context(), c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorksResponse(works))
}

// updateWork godoc
// @Summary Edit an agenda item
// @Tags works
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   work_id path string true "Work ID"
// @Param   work body dto.UpdateWorkRequest true "Fields to change"
// @Success 200 {object} dto.WorkResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or work not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/works/{work_id} [put]
func (h *workHandler) updateWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	work, err := h.workService.UpdateWork(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("work_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkResponse(work))
}

// removeWork godoc
// @Summary Remove an agenda item
// @Tags works
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   work_id path string true "Work ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or work not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/works/{work_id} [delete]
func (h *workHandler) removeWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	if err := h.workService.RemoveWork(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("work_id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateWorkStatus godoc
// @Summary Advance an agenda item's status
// @Description Sets the item's status independently of the parent plan's lifecycle.
// @Tags works
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   work_id path string true "Work ID"
// @Param   status body dto.UpdateWorkStatusRequest true "Target status"
// @Success 200 {object} dto.WorkResponse
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or work not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/works/{work_id}/status [patch]
func (h *workHandler) updateWorkStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateWorkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWorkStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	work, err := h.workService.UpdateWorkStatus(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("work_id"), domain.WorkStatus(req.Status))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Agenda item status updated", slog.String("work_id", work.WorkID), slog.String("status", string(work.Status)))
	c.JSON(http.StatusOK, dto.ToWorkResponse(work))
}
