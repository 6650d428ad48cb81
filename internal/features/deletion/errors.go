package deletion

import "errors"

// The messages reach the client verbatim, hence the sentence casing.
var (
	ErrProjectNotFound  = errors.New("Project not found")
	ErrNotOwner         = errors.New("Only project owner can delete")
	ErrNotMember        = errors.New("Not a member of this project")
	ErrNoVoteInProgress = errors.New("No deletion vote in progress")
)
