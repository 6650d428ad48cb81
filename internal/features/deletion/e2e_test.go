package deletion

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/internal/features/notifications"
	projects_controllers "teamboard/internal/features/projects/controllers"
	projects_dto "teamboard/internal/features/projects/dto"
	projects_testing "teamboard/internal/features/projects/testing"
	tasks_controllers "teamboard/internal/features/tasks/controllers"
	tasks_dto "teamboard/internal/features/tasks/dto"
	users_testing "teamboard/internal/features/users/testing"
	test_utils "teamboard/internal/util/testing"
)

func Test_RequestDeletion_WithoutIncompleteTasks_DeletesImmediately(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
	)

	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Finished Project", owner, router)

	var response RequestDeletionResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)

	assert.True(t, response.Deleted)
	assert.False(t, response.RequiresConfirmation)
	assert.False(t, response.VotingRequired)

	var projectsResponse projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+owner.Token,
		http.StatusOK,
		&projectsResponse,
	)

	for _, p := range projectsResponse.Projects {
		assert.NotEqual(t, project.ID, p.ID)
	}
}

func Test_RequestDeletion_SoleMemberWithIncompleteTasks_RequiresConfirmation(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
		tasks_controllers.GetTaskController(),
	)

	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProject("Solo Project", owner, router)

	addIncompleteTask(t, router, project.ID.String(), owner.Token, "Write release notes")

	var response RequestDeletionResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)

	assert.False(t, response.Deleted)
	assert.True(t, response.RequiresConfirmation)
	assert.Equal(t, 1, response.IncompleteTasks)

	// Confirmation is acknowledged through the force endpoint.
	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/force",
		"Bearer "+owner.Token,
		http.StatusOK,
	)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusNotFound,
	)
}

func Test_RequestDeletion_WithTeamAndIncompleteTasks_OpensVote(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
		tasks_controllers.GetTaskController(),
		notifications.GetNotificationController(),
	)

	owner := users_testing.CreateTestUser()
	member1 := users_testing.CreateTestUser()
	member2 := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Team Project", owner, router)
	projects_testing.AddMemberToProject(project, member1)
	projects_testing.AddMemberToProject(project, member2)

	addIncompleteTask(t, router, project.ID.String(), owner.Token, "Ship the beta")

	var response RequestDeletionResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)

	require.True(t, response.VotingRequired)
	assert.Equal(t, 1, response.Votes) // requester approves implicitly
	assert.Equal(t, 3, response.Required)

	// Members are asked to vote, the requester is not.
	var memberNotifications notifications.ListNotificationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notifications",
		"Bearer "+member1.Token,
		http.StatusOK,
		&memberNotifications,
	)

	require.Len(t, memberNotifications.Notifications, 1)
	assert.Equal(t, notifications.TypeDeletionVote, memberNotifications.Notifications[0].Type)
	assert.Contains(t, memberNotifications.Notifications[0].Message, "wants to delete project \"Team Project\"")

	var ownerNotifications notifications.ListNotificationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notifications",
		"Bearer "+owner.Token,
		http.StatusOK,
		&ownerNotifications,
	)
	assert.Empty(t, ownerNotifications.Notifications)

	var status VoteStatusResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/deletion-vote",
		"Bearer "+member1.Token,
		http.StatusOK,
		&status,
	)

	require.True(t, status.VoteInProgress)
	assert.Equal(t, 1, status.Votes)
	assert.Equal(t, 3, status.Required)
	require.NotNil(t, status.HasVoted)
	assert.False(t, *status.HasVoted)
	assert.Equal(t, 1, status.IncompleteTasks)

	// Completing the task mid-vote does not change the reported count:
	// voters see the snapshot taken when the vote was opened.
	var board tasks_dto.BoardResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/tasks",
		"Bearer "+owner.Token,
		http.StatusOK,
		&board,
	)
	require.Len(t, board.Todo, 1)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/tasks/"+board.Todo[0].ID.String()+"/complete",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
	)

	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/deletion-vote",
		"Bearer "+member1.Token,
		http.StatusOK,
		&status,
	)
	assert.Equal(t, 1, status.IncompleteTasks)

	// First approval is below quorum.
	approve := true
	var voteResponse CastVoteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member1.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusOK,
		&voteResponse,
	)

	assert.False(t, voteResponse.Deleted)
	require.NotNil(t, voteResponse.Approved)
	assert.True(t, *voteResponse.Approved)
	assert.Equal(t, 2, voteResponse.Votes)
	assert.Equal(t, 3, voteResponse.Required)

	// Voting twice does not double count.
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member1.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusOK,
		&voteResponse,
	)

	assert.Equal(t, 2, voteResponse.Votes)

	// Last approval reaches quorum and deletes the project.
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member2.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusOK,
		&voteResponse,
	)

	assert.True(t, voteResponse.Deleted)

	// Everyone is told the project is gone, the requester included.
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notifications",
		"Bearer "+owner.Token,
		http.StatusOK,
		&ownerNotifications,
	)

	require.Len(t, ownerNotifications.Notifications, 1)
	assert.Equal(t, notifications.TypeProjectDeleted, ownerNotifications.Notifications[0].Type)
	assert.Contains(t, ownerNotifications.Notifications[0].Message, "Project \"Team Project\" has been deleted")
}

func Test_VoteDelete_Rejection_CancelsVoteAndNotifiesRequester(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
		tasks_controllers.GetTaskController(),
		notifications.GetNotificationController(),
	)

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Contested Project", owner, router)
	projects_testing.AddMemberToProject(project, member)

	addIncompleteTask(t, router, project.ID.String(), owner.Token, "Migrate the database")

	var response RequestDeletionResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)

	require.True(t, response.VotingRequired)
	assert.Equal(t, 2, response.Required)

	reject := false
	var voteResponse CastVoteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member.Token,
		CastVoteRequestDTO{Approve: &reject},
		http.StatusOK,
		&voteResponse,
	)

	assert.False(t, voteResponse.Deleted)
	require.NotNil(t, voteResponse.Approved)
	assert.False(t, *voteResponse.Approved)

	var status VoteStatusResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/deletion-vote",
		"Bearer "+owner.Token,
		http.StatusOK,
		&status,
	)

	assert.False(t, status.VoteInProgress)

	var ownerNotifications notifications.ListNotificationsResponse
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/notifications",
		"Bearer "+owner.Token,
		http.StatusOK,
		&ownerNotifications,
	)

	require.Len(t, ownerNotifications.Notifications, 1)
	assert.Equal(t, notifications.TypeDeletionRejected, ownerNotifications.Notifications[0].Type)
	assert.Contains(t, ownerNotifications.Notifications[0].Message, "rejected deletion of project \"Contested Project\"")

	// The project survives.
	var projectsResponse projects_dto.ListProjectsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects",
		"Bearer "+owner.Token,
		http.StatusOK,
		&projectsResponse,
	)

	found := false
	for _, p := range projectsResponse.Projects {
		if p.ID == project.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_RequestDeletion_WhileVoteOutstanding_ResetsTally(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
		tasks_controllers.GetTaskController(),
	)

	owner := users_testing.CreateTestUser()
	member1 := users_testing.CreateTestUser()
	member2 := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Restarted Vote", owner, router)
	projects_testing.AddMemberToProject(project, member1)
	projects_testing.AddMemberToProject(project, member2)

	addIncompleteTask(t, router, project.ID.String(), owner.Token, "Close out the sprint")

	var response RequestDeletionResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)
	require.True(t, response.VotingRequired)

	approve := true
	var voteResponse CastVoteResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member1.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusOK,
		&voteResponse,
	)
	require.Equal(t, 2, voteResponse.Votes)

	// A second delete request overwrites the outstanding vote and
	// re-seeds the tally with the requester alone.
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+owner.Token,
		nil,
		http.StatusOK,
		&response,
	)

	require.True(t, response.VotingRequired)
	assert.Equal(t, 1, response.Votes)
	assert.Equal(t, 3, response.Required)

	var status VoteStatusResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/deletion-vote",
		"Bearer "+member1.Token,
		http.StatusOK,
		&status,
	)

	assert.Equal(t, 1, status.Votes)
	require.NotNil(t, status.HasVoted)
	assert.False(t, *status.HasVoted)
}

func Test_RequestDeletion_ViaMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
	)

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Owned Project", owner, router)
	projects_testing.AddMemberToProject(project, member)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/delete-request",
		"Bearer "+member.Token,
		nil,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "Only project owner can delete")
}

func Test_ForceDelete_ViaMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
	)

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Protected Project", owner, router)
	projects_testing.AddMemberToProject(project, member)

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/force",
		"Bearer "+member.Token,
		http.StatusForbidden,
	)
}

func Test_VoteDelete_WithoutOpenVote_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
	)

	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Quiet Project", owner, router)
	projects_testing.AddMemberToProject(project, member)

	approve := true
	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+member.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusNotFound,
	)

	assert.Contains(t, string(resp.Body), "No deletion vote in progress")
}

func Test_VoteDelete_ViaNonMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(
		GetDeletionController(),
		projects_controllers.GetProjectController(),
	)

	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Members Only", owner, router)

	approve := true
	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String()+"/vote-delete",
		"Bearer "+outsider.Token,
		CastVoteRequestDTO{Approve: &approve},
		http.StatusForbidden,
	)
}

func addIncompleteTask(t *testing.T, router *gin.Engine, projectID, token, title string) {
	t.Helper()

	request := tasks_dto.SaveBoardRequestDTO{
		Todo:   []tasks_dto.BoardTaskDTO{{Title: title}},
		Action: tasks_dto.BoardActionAdd,
	}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/projects/"+projectID+"/tasks",
		"Bearer "+token,
		request,
		http.StatusOK,
	)
}
