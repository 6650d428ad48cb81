package deletion

type CastVoteRequestDTO struct {
	Approve *bool `json:"approve" binding:"required"`
}

type RequestDeletionResponseDTO struct {
	Deleted              bool `json:"deleted,omitempty"`
	RequiresConfirmation bool `json:"requiresConfirmation,omitempty"`
	IncompleteTasks      int  `json:"incompleteTasks,omitempty"`
	VotingRequired       bool `json:"votingRequired,omitempty"`
	Votes                int  `json:"votes,omitempty"`
	Required             int  `json:"required,omitempty"`
}

type CastVoteResponseDTO struct {
	Deleted  bool  `json:"deleted,omitempty"`
	Approved *bool `json:"approved,omitempty"`
	Votes    int   `json:"votes,omitempty"`
	Required int   `json:"required,omitempty"`
}

type VoteStatusResponseDTO struct {
	VoteInProgress  bool  `json:"voteInProgress"`
	Votes           int   `json:"votes,omitempty"`
	Required        int   `json:"required,omitempty"`
	HasVoted        *bool `json:"hasVoted,omitempty"`
	IncompleteTasks int   `json:"incompleteTasks,omitempty"`
}
