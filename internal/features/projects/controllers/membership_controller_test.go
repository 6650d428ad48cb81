package projects_controllers

import (
	"net/http"
	"testing"

	projects_dto "teamboard/internal/features/projects/dto"
	projects_testing "teamboard/internal/features/projects/testing"
	users_enums "teamboard/internal/features/users/enums"
	users_testing "teamboard/internal/features/users/testing"
	test_utils "teamboard/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_InviteAcceptFlow_MemberJoinsProject(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Invite Flow Project", owner, router)

	// Owner invites by email
	inviteRequest := projects_dto.InviteMemberRequestDTO{Email: invitee.Email}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		inviteRequest,
		http.StatusOK,
	)

	// Invitee sees the pending invitation
	var pending projects_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/pending",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&pending,
	)

	require.Len(t, pending.Invitations, 1)
	assert.Equal(t, project.ID, pending.Invitations[0].ProjectID)
	assert.Equal(t, "Invite Flow Project", pending.Invitations[0].ProjectName)

	// Invitee accepts and becomes a member
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations/"+pending.Invitations[0].ID.String()+"/accept",
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
	)

	var members projects_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&members,
	)

	assert.Len(t, members.Members, 2)

	roles := make([]users_enums.ProjectRole, 0, len(members.Members))
	for _, m := range members.Members {
		roles = append(roles, m.Role)
	}
	assert.Contains(t, roles, users_enums.ProjectRoleOwner)
	assert.Contains(t, roles, users_enums.ProjectRoleMember)

	// The invitation is gone once accepted
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/pending",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&pending,
	)
	assert.Empty(t, pending.Invitations)
}

func Test_DeclineInvitation_InviteeStaysOut(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Declined Project", owner, router)

	inviteRequest := projects_dto.InviteMemberRequestDTO{Email: invitee.Email}
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		inviteRequest,
		http.StatusOK,
	)

	var pending projects_dto.ListInvitationsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/invitations/pending",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&pending,
	)
	require.Len(t, pending.Invitations, 1)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/invitations/"+pending.Invitations[0].ID.String()+"/decline",
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
	)

	// Declining does not grant access
	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+invitee.Token,
		http.StatusForbidden,
	)
}

func Test_InviteMember_ViaNonOwner_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Owner Only Invites", owner, router)
	projects_testing.AddMemberToProject(project, member)

	inviteRequest := projects_dto.InviteMemberRequestDTO{Email: stranger.Email}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+member.Token,
		inviteRequest,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "only project owner can invite members")
}

func Test_InviteMember_WithUnknownEmail_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Unknown Invitee", owner, router)

	inviteRequest := projects_dto.InviteMemberRequestDTO{Email: "nobody@example.com"}
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		inviteRequest,
		http.StatusNotFound,
	)

	assert.Contains(t, string(resp.Body), "no user with this email")
}

func Test_RemoveMember_ViaOwner_MemberRemoved(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Removal Project", owner, router)
	projects_testing.AddMemberToProject(project, member)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members/"+member.UserID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
}

func Test_RemoveMember_Owner_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Sticky Owner", owner, router)

	resp := test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/members/"+owner.UserID.String(),
		"Bearer "+owner.Token,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "project owner cannot be removed")
}
