package deletion

import (
	"fmt"

	"github.com/google/uuid"

	"teamboard/internal/features/notifications"
)

// The decision logic is deliberately free of I/O. The service gathers
// the current state, the evaluators below decide what happens, and the
// service applies the outcome (storage writes, notification dispatch).

type OutcomeKind int

const (
	// OutcomeDeleted finalizes the project immediately.
	OutcomeDeleted OutcomeKind = iota
	// OutcomeConfirmationRequired asks a sole owner to confirm; no
	// state changes.
	OutcomeConfirmationRequired
	// OutcomeVoteOpened starts a majority vote.
	OutcomeVoteOpened
	// OutcomeVoteRecorded counted an approval short of quorum.
	OutcomeVoteRecorded
	// OutcomeRejected cancels the outstanding vote.
	OutcomeRejected
)

type Outcome struct {
	Kind     OutcomeKind
	Votes    int
	Required int
	// Voters is the updated approval list after the vote was applied.
	// The service persists it as-is so counting stays in one place.
	Voters []uuid.UUID
	Drafts []notifications.Draft
}

type RequestInput struct {
	ProjectID       uuid.UUID
	ProjectName     string
	OwnerID         uuid.UUID
	RequesterID     uuid.UUID
	RequesterName   string
	MemberIDs       []uuid.UUID
	IncompleteTasks int
}

// EvaluateRequest decides what an owner's deletion request does:
// immediate deletion when nothing is unfinished, a confirmation
// round-trip for a sole member, or a vote across the team.
func EvaluateRequest(in RequestInput) (Outcome, error) {
	if in.RequesterID != in.OwnerID {
		return Outcome{}, ErrNotOwner
	}

	if in.IncompleteTasks == 0 {
		return Outcome{Kind: OutcomeDeleted}, nil
	}

	if len(in.MemberIDs) == 1 {
		return Outcome{Kind: OutcomeConfirmationRequired}, nil
	}

	drafts := make([]notifications.Draft, 0, len(in.MemberIDs)-1)
	for _, memberID := range in.MemberIDs {
		if memberID == in.RequesterID {
			continue
		}

		drafts = append(drafts, notifications.Draft{
			UserID: memberID,
			Type:   notifications.TypeDeletionVote,
			Message: fmt.Sprintf(
				"%s wants to delete project \"%s\". Vote required!",
				in.RequesterName, in.ProjectName,
			),
			ProjectID: &in.ProjectID,
		})
	}

	return Outcome{
		Kind:     OutcomeVoteOpened,
		Votes:    1,
		Required: len(in.MemberIDs),
		Drafts:   drafts,
	}, nil
}

type VoteInput struct {
	ProjectID   uuid.UUID
	ProjectName string
	VoterID     uuid.UUID
	VoterName   string
	Approve     bool
	MemberIDs   []uuid.UUID
}

// EvaluateVote applies one member's vote to the outstanding vote
// state. Approvals are idempotent per member; a single rejection
// cancels the vote.
func EvaluateVote(vote *DeletionVote, in VoteInput) Outcome {
	if !in.Approve {
		return Outcome{
			Kind: OutcomeRejected,
			Drafts: []notifications.Draft{{
				UserID: vote.RequestedBy,
				Type:   notifications.TypeDeletionRejected,
				Message: fmt.Sprintf(
					"%s rejected deletion of project \"%s\"",
					in.VoterName, in.ProjectName,
				),
				ProjectID: &in.ProjectID,
			}},
		}
	}

	votes := append([]uuid.UUID{}, vote.Votes...)
	if !vote.HasVoted(in.VoterID) {
		votes = append(votes, in.VoterID)
	}

	if len(votes) >= vote.Required {
		drafts := make([]notifications.Draft, 0, len(in.MemberIDs))
		for _, memberID := range in.MemberIDs {
			drafts = append(drafts, notifications.Draft{
				UserID:    memberID,
				Type:      notifications.TypeProjectDeleted,
				Message:   fmt.Sprintf("Project \"%s\" has been deleted", in.ProjectName),
				ProjectID: &in.ProjectID,
			})
		}

		return Outcome{
			Kind:     OutcomeDeleted,
			Votes:    len(votes),
			Required: vote.Required,
			Voters:   votes,
			Drafts:   drafts,
		}
	}

	return Outcome{
		Kind:     OutcomeVoteRecorded,
		Votes:    len(votes),
		Required: vote.Required,
		Voters:   votes,
	}
}
