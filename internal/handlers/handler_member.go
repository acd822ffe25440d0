package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/luzyverdad/lodge_management_app/internal/core/ports/services"
	"github.com/luzyverdad/lodge_management_app/internal/dto"
	"github.com/luzyverdad/lodge_management_app/internal/middleware"
)

// memberHandler exposes the read-only member directory.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers the member directory routes.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.GET("", h.listMembers)
		members.GET("/:member_id", h.getMember)
	}
}

// listMembers godoc
// @Summary List active members
// @Tags members
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListMembersResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	members, err := h.memberService.ListMembers(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithError(c, logger, err)
		return
	}

	resp := dto.ListMembersResponse{Members: make([]dto.MemberResponse, len(members))}
	for i, member := range members {
		resp.Members[i] = dto.ToMemberResponse(&member)
	}
	c.JSON(http.StatusOK, resp)
}

// getMember godoc
// @Summary Get a member's directory record
// @Tags members
// @Produce  json
// @Param   member_id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /members/{member_id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.memberService.GetMemberByID(c.Request.Context(), c.Param("member_id"))
	if err != nil {
		respondWithError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}
