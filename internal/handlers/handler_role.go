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

// roleHandler handles HTTP requests for a plan's role assignments.
type roleHandler struct {
	roleService   portssvc.RitualRoleSvcFacade
	memberService portssvc.MemberSvcFacade
}

func newRoleHandler(rs portssvc.RitualRoleSvcFacade, ms portssvc.MemberSvcFacade) *roleHandler {
	return &roleHandler{
		roleService:   rs,
		memberService: ms,
	}
}

// registerRoleRoutes registers role assignment routes nested under a plan.
func registerRoleRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newRoleHandler(services.Role, services.Member)

	roles := rg.Group("/roles")
	{
		roles.POST("", h.addRole)
		roles.GET("", h.listRoles)
		roles.PUT("/:role_id", h.updateRole)
		roles.DELETE("/:role_id", h.removeRole)
		roles.POST("/:role_id/assign", h.assignRole)
		roles.POST("/:role_id/confirm", h.confirmRole)
		roles.POST("/:role_id/unconfirm", h.unconfirmRole)
	}
}

// addRole godoc
// @Summary Add a role assignment
// @Description Adds a ceremonial role to a plan, optionally already assigned to a member.
// @Tags roles
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role body dto.AddRoleRequest true "Role details"
// @Success 201 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Failure 409 {object} ErrorResponse "Role type already present"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles [post]
func (h *roleHandler) addRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddRole", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	role, err := h.roleService.AddRole(c.Request.Context(), actor, c.Param("ritual_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Role added", slog.String("ritual_id", role.RitualID), slog.String("role_id", role.RoleID))
	c.JSON(http.StatusCreated, dto.ToRoleResponse(role, h.resolveAssignedName(c, role)))
}

// listRoles godoc
// @Summary List role assignments
// @Tags roles
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Success 200 {object} dto.ListRolesResponse
// @Failure 404 {object} ErrorResponse "Plan not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roles, err := h.roleService.ListRoles(c.Request.Context(), c.Param("ritual_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	memberIDs := make([]string, 0, len(roles))
	for _, role := range roles {
		if role.AssignedTo != nil {
			memberIDs = append(memberIDs, *role.AssignedTo)
		}
	}
	names, err := h.memberService.ResolveMemberNames(c.Request.Context(), memberIDs)
	if err != nil {
		logger.Warn("Failed to resolve assigned member names", slog.String("error", err.Error()))
		names = map[string]string{}
	}

	resp := dto.ListRolesResponse{Roles: make([]dto.RoleResponse, len(roles))}
	for i, role := range roles {
		name := ""
		if role.AssignedTo != nil {
			name = names[*role.AssignedTo]
		}
		resp.Roles[i] = dto.ToRoleResponse(&role, name)
	}
	c.JSON(http.StatusOK, resp)
}

// updateRole godoc
// @Summary Edit a role assignment
// @Tags roles
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role_id path string true "Role ID"
// @Param   role body dto.UpdateRoleRequest true "Fields to change"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or role not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles/{role_id} [put]
func (h *roleHandler) updateRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRole", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("role_id"), req)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(role, h.resolveAssignedName(c, role)))
}

// removeRole godoc
// @Summary Remove a role assignment
// @Tags roles
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role_id path string true "Role ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or role not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles/{role_id} [delete]
func (h *roleHandler) removeRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	if err := h.roleService.RemoveRole(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("role_id")); err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// assignRole godoc
// @Summary Assign a member to a role
// @Description Binds a member to an existing role. Assignment does not imply confirmation.
// @Tags roles
// @Accept  json
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role_id path string true "Role ID"
// @Param   assignment body dto.AssignRoleRequest true "Member to assign"
// @Success 200 {object} dto.RoleResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan, role or member not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles/{role_id}/assign [post]
func (h *roleHandler) assignRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AssignRole", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	role, err := h.roleService.AssignRole(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("role_id"), req.MemberID)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	logger.Info("Role assigned", slog.String("role_id", role.RoleID), slog.String("member_id", req.MemberID))
	c.JSON(http.StatusOK, dto.ToRoleResponse(role, h.resolveAssignedName(c, role)))
}

// confirmRole godoc
// @Summary Confirm a role assignment
// @Tags roles
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role_id path string true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or role not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles/{role_id}/confirm [post]
func (h *roleHandler) confirmRole(c *gin.Context) {
	h.setConfirmed(c, true)
}

// unconfirmRole godoc
// @Summary Withdraw a role confirmation
// @Tags roles
// @Produce  json
// @Param   ritual_id path string true "Ritual plan ID"
// @Param   role_id path string true "Role ID"
// @Success 200 {object} dto.RoleResponse
// @Failure 403 {object} ErrorResponse "Not allowed"
// @Failure 404 {object} ErrorResponse "Plan or role not found"
// @Security BearerAuth
// @Router /rituals/{ritual_id}/roles/{role_id}/unconfirm [post]
func (h *roleHandler) unconfirmRole(c *gin.Context) {
	h.setConfirmed(c, false)
}

func (h *roleHandler) setConfirmed(c *gin.Context, confirmed bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := resolveActor(c, h.memberService)
	if !ok {
		return
	}

	role, err := h.roleService.ConfirmRole(c.Request.Context(), actor, c.Param("ritual_id"), c.Param("role_id"), confirmed)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoleResponse(role, h.resolveAssignedName(c, role)))
}

// resolveAssignedName resolves the display name of the member a single role is
// assigned to. Resolution failures degrade to an empty name.
func (h *roleHandler) resolveAssignedName(c *gin.Context, role *domain.RitualRole) string {
	if role.AssignedTo == nil {
		return ""
	}
	names, err := h.memberService.ResolveMemberNames(c.Request.Context(), []string{*role.AssignedTo})
	if err != nil {
		return ""
	}
	return names[*role.AssignedTo]
}
