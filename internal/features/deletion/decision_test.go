package deletion

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"teamboard/internal/features/notifications"
)

func Test_EvaluateRequest_RequesterIsNotOwner_ReturnsErrNotOwner(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	_, err := EvaluateRequest(RequestInput{
		ProjectID:       uuid.New(),
		ProjectName:     "Apollo",
		OwnerID:         owner,
		RequesterID:     stranger,
		RequesterName:   "Sam",
		MemberIDs:       []uuid.UUID{owner, stranger},
		IncompleteTasks: 3,
	})

	assert.ErrorIs(t, err, ErrNotOwner)
}

func Test_EvaluateRequest_NoIncompleteTasks_DeletesImmediately(t *testing.T) {
	owner := uuid.New()

	outcome, err := EvaluateRequest(RequestInput{
		ProjectID:       uuid.New(),
		ProjectName:     "Apollo",
		OwnerID:         owner,
		RequesterID:     owner,
		RequesterName:   "Sam",
		MemberIDs:       []uuid.UUID{owner, uuid.New(), uuid.New()},
		IncompleteTasks: 0,
	})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeDeleted, outcome.Kind)
	assert.Empty(t, outcome.Drafts)
}

func Test_EvaluateRequest_SoleMemberWithIncompleteTasks_RequiresConfirmation(t *testing.T) {
	owner := uuid.New()

	outcome, err := EvaluateRequest(RequestInput{
		ProjectID:       uuid.New(),
		ProjectName:     "Apollo",
		OwnerID:         owner,
		RequesterID:     owner,
		RequesterName:   "Sam",
		MemberIDs:       []uuid.UUID{owner},
		IncompleteTasks: 2,
	})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeConfirmationRequired, outcome.Kind)
	assert.Empty(t, outcome.Drafts)
}

func Test_EvaluateRequest_TeamWithIncompleteTasks_OpensVoteAndNotifiesOthers(t *testing.T) {
	owner := uuid.New()
	member1 := uuid.New()
	member2 := uuid.New()
	projectID := uuid.New()

	outcome, err := EvaluateRequest(RequestInput{
		ProjectID:       projectID,
		ProjectName:     "Apollo",
		OwnerID:         owner,
		RequesterID:     owner,
		RequesterName:   "Sam",
		MemberIDs:       []uuid.UUID{owner, member1, member2},
		IncompleteTasks: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, OutcomeVoteOpened, outcome.Kind)
	assert.Equal(t, 1, outcome.Votes)
	assert.Equal(t, 3, outcome.Required)

	assert.Len(t, outcome.Drafts, 2)
	notified := map[uuid.UUID]bool{}
	for _, draft := range outcome.Drafts {
		notified[draft.UserID] = true
		assert.Equal(t, notifications.TypeDeletionVote, draft.Type)
		assert.Equal(t, "Sam wants to delete project \"Apollo\". Vote required!", draft.Message)
		assert.Equal(t, projectID, *draft.ProjectID)
	}

	assert.False(t, notified[owner], "requester must not be notified about the vote they opened")
	assert.True(t, notified[member1])
	assert.True(t, notified[member2])
}

func Test_EvaluateVote_Rejection_CancelsVoteAndNotifiesRequester(t *testing.T) {
	requester := uuid.New()
	voter := uuid.New()
	projectID := uuid.New()

	vote := &DeletionVote{
		ProjectID:   projectID,
		RequestedBy: requester,
		Required:    3,
		Votes:       []uuid.UUID{requester},
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectID:   projectID,
		ProjectName: "Apollo",
		VoterID:     voter,
		VoterName:   "Riley",
		Approve:     false,
		MemberIDs:   []uuid.UUID{requester, voter, uuid.New()},
	})

	assert.Equal(t, OutcomeRejected, outcome.Kind)
	assert.Len(t, outcome.Drafts, 1)
	assert.Equal(t, requester, outcome.Drafts[0].UserID)
	assert.Equal(t, notifications.TypeDeletionRejected, outcome.Drafts[0].Type)
	assert.Equal(t, "Riley rejected deletion of project \"Apollo\"", outcome.Drafts[0].Message)
}

func Test_EvaluateVote_ApprovalBelowQuorum_RecordsVote(t *testing.T) {
	requester := uuid.New()
	voter := uuid.New()

	vote := &DeletionVote{
		ProjectID:   uuid.New(),
		RequestedBy: requester,
		Required:    3,
		Votes:       []uuid.UUID{requester},
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectName: "Apollo",
		VoterID:     voter,
		VoterName:   "Riley",
		Approve:     true,
		MemberIDs:   []uuid.UUID{requester, voter, uuid.New()},
	})

	assert.Equal(t, OutcomeVoteRecorded, outcome.Kind)
	assert.Equal(t, 2, outcome.Votes)
	assert.Equal(t, 3, outcome.Required)
	assert.Equal(t, []uuid.UUID{requester, voter}, outcome.Voters)
	assert.Equal(t, []uuid.UUID{requester}, vote.Votes, "evaluation must not mutate the stored vote")
	assert.Empty(t, outcome.Drafts)
}

func Test_EvaluateVote_RepeatedApproval_IsIdempotent(t *testing.T) {
	requester := uuid.New()

	vote := &DeletionVote{
		ProjectID:   uuid.New(),
		RequestedBy: requester,
		Required:    3,
		Votes:       []uuid.UUID{requester},
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectName: "Apollo",
		VoterID:     requester,
		VoterName:   "Sam",
		Approve:     true,
		MemberIDs:   []uuid.UUID{requester, uuid.New(), uuid.New()},
	})

	assert.Equal(t, OutcomeVoteRecorded, outcome.Kind)
	assert.Equal(t, 1, outcome.Votes, "a member voting twice must not be counted twice")
	assert.Equal(t, []uuid.UUID{requester}, outcome.Voters)
}

func Test_EvaluateVote_QuorumReached_DeletesAndNotifiesAllMembers(t *testing.T) {
	requester := uuid.New()
	voter1 := uuid.New()
	voter2 := uuid.New()
	members := []uuid.UUID{requester, voter1, voter2}

	vote := &DeletionVote{
		ProjectID:   uuid.New(),
		RequestedBy: requester,
		Required:    3,
		Votes:       []uuid.UUID{requester, voter1},
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectName: "Apollo",
		VoterID:     voter2,
		VoterName:   "Riley",
		Approve:     true,
		MemberIDs:   members,
	})

	assert.Equal(t, OutcomeDeleted, outcome.Kind)
	assert.Equal(t, 3, outcome.Votes)
	assert.Len(t, outcome.Drafts, len(members), "every member hears about the deletion, the voter included")

	for _, draft := range outcome.Drafts {
		assert.Equal(t, notifications.TypeProjectDeleted, draft.Type)
		assert.Equal(t, "Project \"Apollo\" has been deleted", draft.Message)
	}
}

func Test_EvaluateVote_TwoMemberProject_SecondApprovalFinalizes(t *testing.T) {
	requester := uuid.New()
	partner := uuid.New()

	vote := &DeletionVote{
		ProjectID:   uuid.New(),
		RequestedBy: requester,
		Required:    2,
		Votes:       []uuid.UUID{requester},
	}

	outcome := EvaluateVote(vote, VoteInput{
		ProjectName: "Apollo",
		VoterID:     partner,
		VoterName:   "Riley",
		Approve:     true,
		MemberIDs:   []uuid.UUID{requester, partner},
	})

	assert.Equal(t, OutcomeDeleted, outcome.Kind)
	assert.Equal(t, 2, outcome.Votes)
}

func Test_EvaluateVote_QuorumSequence_OnlyLastApprovalDeletes(t *testing.T) {
	requester := uuid.New()
	members := []uuid.UUID{requester}
	for i := 0; i < 4; i++ {
		members = append(members, uuid.New())
	}

	vote := &DeletionVote{
		ProjectID:   uuid.New(),
		RequestedBy: requester,
		Required:    len(members),
		Votes:       []uuid.UUID{requester},
	}

	for i, voter := range members[1:] {
		outcome := EvaluateVote(vote, VoteInput{
			ProjectName: "Apollo",
			VoterID:     voter,
			VoterName:   fmt.Sprintf("Member %d", i+1),
			Approve:     true,
			MemberIDs:   members,
		})

		if i < len(members)-2 {
			assert.Equal(t, OutcomeVoteRecorded, outcome.Kind)
			vote.Votes = outcome.Voters
		} else {
			assert.Equal(t, OutcomeDeleted, outcome.Kind)
			assert.Len(t, outcome.Voters, len(members))
		}
	}
}
