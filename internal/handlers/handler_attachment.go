package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// attachmentHandler handles HTTP requests for a plan's attachment metadata.
type attachmentHandler struct {
	attachmentService portssvc.RitualAttachmentSvcFacade
	memberService     portssvc.MemberSvcFacade
}

func newAttachmentHandler(as portssvc.RitualAttachmentSvcFacade, ms portssvc.MemberSvcFacade) *attachmentHandler {
	return &attachmentHandler{
		attachmentService: as,
		memberService:     ms,
	}
}

// registerAttachmentRoutes registers attachment routes nested under a plan.
func registerAttachmentRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAttachmentHandler(services.Attachment, services.Member)

	attachments := rg.Group("/attachments")
	{
		attachments.POST("", h.addAttachment)
		attachments.GET("", h.listAttachments)
		attachments.DELETE("/:attachment_id", h.removeAttachment)
	}
}

// addAttachment godoc
// @Summary Record attachment metadata
// @Description Records a document reference for a plan. The file bytes live in external storage.
// @Tags attachments
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   attachment body dto.AddAttachmentRequest true "Attachment metadata"
// @Success 201 {object} dto.AttachmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/attachments [post]
func (h *attachmentHandler) addAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAttachment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	attachment, err := h.attachmentService.AddAttachment(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Attachment recorded", slog.String("attachment_id", attachment.AttachmentID))
	c.JSON(http.StatusCreated, dto.ToAttachmentResponse(attachment))
}

// listAttachments godoc
// @Summary List attachment metadata
// @Tags attachments
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.ListAttachmentsResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/attachments [get]
func (h *attachmentHandler) listAttachments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttachmentsResponse(attachments))
}

// removeAttachment godoc
// @Summary Remove attachment metadata
// @Tags attachments
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   attachment_id path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or attachment not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/attachments/{attachment_id} [delete]
func (h *attachmentHandler) removeAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	if err := h.attachmentService.RemoveAttachment(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("attachment_id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
