package projects_controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projects_dto "teamboard/internal/features/projects/dto"
	projects_services "teamboard/internal/features/projects/services"
	users_models "teamboard/internal/features/users/models"
)

type MembershipController struct {
	membershipService *projects_services.MembershipService
	invitationService *projects_services.InvitationService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/members", c.GetMembers)
	router.DELETE("/projects/:projectId/members/:memberId", c.RemoveMember)
	router.POST("/projects/:projectId/invite", c.InviteMember)
	router.GET("/invitations/pending", c.GetPendingInvitations)
	router.POST("/invitations/:invitationId/accept", c.AcceptInvitation)
	router.POST("/invitations/:invitationId/decline", c.DeclineInvitation)
}

// GetMembers
// @Summary List project members
// @Description List the members of a project the caller belongs to
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_dto.ListMembersResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.membershipService.GetProjectMembers(projectID, user)
	if err != nil {
		if err.Error() == "insufficient permissions to view project members" {
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve members"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// RemoveMember
// @Summary Remove a project member
// @Description Remove a member from the project; owner only, the owner cannot be removed
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param memberId path string true "Member user ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/members/{memberId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := c.membershipService.RemoveMember(projectID, memberID, user); err != nil {
		switch err.Error() {
		case "only project owner can remove members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "member not found":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "project owner cannot be removed":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove member"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// InviteMember
// @Summary Invite a user to a project
// @Description Invite a registered user to the project by email; owner only
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.InviteMemberRequestDTO true "Invitee email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/invite [post]
func (c *MembershipController) InviteMember(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request projects_dto.InviteMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.invitationService.InviteMember(projectID, &request, user); err != nil {
		switch err.Error() {
		case "only project owner can invite members":
			ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case "no user with this email":
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "user is already a member", "invitation already pending":
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send invitation"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation sent successfully"})
}

// GetPendingInvitations
// @Summary List pending invitations
// @Description List invitations waiting for the caller's response
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListInvitationsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invitations/pending [get]
func (c *MembershipController) GetPendingInvitations(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	response, err := c.invitationService.GetPendingInvitations(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invitations"})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvitation
// @Summary Accept an invitation
// @Description Accept a pending invitation and join the project as a member
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/{invitationId}/accept [post]
func (c *MembershipController) AcceptInvitation(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.AcceptInvitation(invitationID, user); err != nil {
		if err.Error() == "invitation not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept invitation"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation accepted"})
}

// DeclineInvitation
// @Summary Decline an invitation
// @Description Decline a pending invitation
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/{invitationId}/decline [post]
func (c *MembershipController) DeclineInvitation(ctx *gin.Context) {
	user, isOk := ctx.MustGet("user").(*users_models.User)
	if !isOk {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user type in context"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.DeclineInvitation(invitationID, user); err != nil {
		if err.Error() == "invitation not found" {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline invitation"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}
