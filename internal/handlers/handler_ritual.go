package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luzyverdad/lodge_management_app/internal/core/domain"
	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// ritualHandler handles HTTP requests related to ritual plans.
type ritualHandler struct {
	ritualService portssvc.RitualSvcFacade
	memberService portssvc.MemberSvcFacade
}

// newRitualHandler creates a new ritualHandler.
func newRitualHandler(rs portssvc.RitualSvcFacade, ms portssvc.MemberSvcFacade) *ritualHandler {
	return &ritualHandler{
		ritualService: rs,
		memberService: ms,
	}
}

// registerRitualRoutes registers routes for ritual plans and delegates the
// nested sub-engine routes (roles, works, minutes, attachments).
func registerRitualRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newRitualHandler(services.Ritual, services.Member)

	rituals := rg.Group("/rituals")
	{
		rituals.POST("", h.createRitual)
		rituals.GET("", h.listRituals)
	}

	ritualSpecific := rg.Group("/rituals/:ritual_id")
	{
		ritualSpecific.GET("", h.getRitual)
		ritualSpecific.PUT("", h.updateRitual)
		ritualSpecific.POST("/approve", h.approveRitual)
		ritualSpecific.POST("/complete", h.completeRitual)
		ritualSpecific.POST("/cancel", h.cancelRitual)

		registerRoleRoutes(ritualSpecific, services)
		registerWorkRoutes(ritualSpecific, services)
		registerMinutesRoutes(ritualSpecific, services)
		registerAttachmentRoutes(ritualSpecific, services)
	}
}

// createRitual godoc
// @Summary Create a ritual plan
// @Description Creates a new ritual plan in draft with the caller as creator.
// @Tags rituals
// @Accept  json
// @Produce  json
// @Param   ritual body dto.CreateRitualRequest true "Ritual plan details"
// @Success 201 {object} dto.RitualResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed to plan works"
// @Security BearerAuth
// @Router /rituals [post]
func (h *ritualHandler) createRitual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRitualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRitual", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	plan, err := h.ritualService.CreateRitual(c.Request.Context(), actor, req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Ritual plan created", slog.String("ritual_id", plan.RitualID))
	c.JSON(http.StatusCreated, dto.ToRitualResponse(plan))
}

// listRituals godoc
// @Summary List ritual plans
// @Description Retrieves ritual plans matching the filters, newest first, with token pagination.
// @Tags rituals
// @Produce  json
// @Param   search query string false "Match against title or description"
// @Param   status query string false "Filter by plan status"
// @Param   ritual_type query string false "Filter by ritual type"
// @Param   degree query int false "Filter by degree"
// @Param   date_from query string false "Earliest date (YYYY-MM-DD)"
// @Param   date_to query string false "Latest date (YYYY-MM-DD)"
// @Param   upcoming query bool false "Only plans from today onward"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListRitualsResponse
// @Failure 400 {object} ErrorResponse "Invalid filters"
// @Security BearerAuth
// @Router /rituals [get]
func (h *ritualHandler) listRituals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ListRitualsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ListRituals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.RitualListFilter{
		Search:     req.Search,
		Status:     domain.RitualStatus(req.Status),
		RitualType: domain.RitualType(req.RitualType),
		Degree:     req.Degree,
		Upcoming:   req.Upcoming,
	}
	if req.DateFrom != "" {
		from, _ := time.Parse("2006-01-02", req.DateFrom)
		filter.DateFrom = &from
	}
	if req.DateTo != "" {
		to, _ := time.Parse("2006-01-02", req.DateTo)
		filter.DateTo = &to
	}

	plans, nextToken, err := h.ritualService.ListRituals(c.Request.Context(), filter, req.Limit, req.NextToken)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListRitualsResponse(plans, nextToken))
}

// getRitual godoc
// @Summary Get a ritual plan
// @Tags rituals
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.RitualResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id} [get]
func (h *ritualHandler) getRitual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	plan, err := h.ritualService.GetRitualByID(c.Request.Context(), c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRitualResponse(plan))
}

// updateRitual godoc
// @Summary Edit a ritual plan
// @Description Edits core plan fields. Only draft plans accept edits.
// @Tags rituals
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   ritual body dto.UpdateRitualRequest true "Fields to change"
// @Success 200 {object} dto.RitualResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Plan is no longer editable"
// @Security BearerAuth
// @Router /rituals/{ritual_id} [put]
func (h *ritualHandler) updateRitual(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRitualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRitual", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	plan, err := h.ritualService.UpdateRitual(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Ritual plan updated", slog.String("ritual_id", plan.RitualID))
	c.JSON(http.StatusOK, dto.ToRitualResponse(plan))
}

// approveRitual godoc
// @Summary Approve a ritual plan
// @Description Moves a draft plan to approved. Only the presiding officer may approve.
// @Tags rituals
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.RitualResponse
// @Failure 403 {object} ErrorResponse "Not the presiding officer"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Plan is not in draft"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/approve [post]
func (h *ritualHandler) approveRitual(c *gin.Context) {
	h.transition(c, domain.RitualApproved)
}

// completeRitual godoc
// @Summary Complete a ritual plan
// @Description Moves an approved plan to completed, opening it for minutes.
// @Tags rituals
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.RitualResponse
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Plan is not approved"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/complete [post]
func (h *ritualHandler) completeRitual(c *gin.Context) {
	h.transition(c, domain.RitualCompleted)
}

// cancelRitual godoc
// @Summary Cancel a ritual plan
// @Description Cancels a draft or approved plan. Cancellation is terminal.
// @Tags rituals
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.RitualResponse
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Plan is already terminal"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/cancel [post]
func (h *ritualHandler) cancelRitual(c *gin.Context) {
	h.transition(c, domain.RitualCancelled)
}

func (h *ritualHandler) transition(c *gin.Context, target domain.RitualStatus) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	plan, err := h.ritualService.TransitionRitual(c.Request.Context(), actor, c.Param("ritual_id"), target)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Ritual plan transitioned", slog.String("ritual_id", plan.RitualID), slog.String("status", string(plan.Status)))
	c.JSON(http.StatusOK, dto.ToRitualResponse(plan))
}
