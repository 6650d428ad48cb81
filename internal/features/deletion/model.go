package deletion

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeletionVote is the single outstanding vote for a project. A row
// exists exactly while a vote is in progress.
type DeletionVote struct {
	ProjectID       uuid.UUID `json:"projectId"       gorm:"column:project_id;primaryKey"`
	RequestedBy     uuid.UUID `json:"requestedBy"     gorm:"column:requested_by"`
	RequestedAt     time.Time `json:"requestedAt"     gorm:"column:requested_at"`
	Required        int       `json:"required"        gorm:"column:required"`
	IncompleteTasks int       `json:"incompleteTasks" gorm:"column:incomplete_tasks"`

	VotesRaw string      `json:"-"     gorm:"column:votes_raw"`
	Votes    []uuid.UUID `json:"votes" gorm:"-"`
}

func (DeletionVote) TableName() string {
	return "deletion_votes"
}

func (v *DeletionVote) BeforeSave(tx *gorm.DB) error {
	ids := make([]string, len(v.Votes))
	for i, id := range v.Votes {
		ids[i] = id.String()
	}

	v.VotesRaw = strings.Join(ids, ",")

	return nil
}

func (v *DeletionVote) AfterFind(tx *gorm.DB) error {
	v.Votes = []uuid.UUID{}

	if v.VotesRaw == "" {
		return nil
	}

	for _, raw := range strings.Split(v.VotesRaw, ",") {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return err
		}

		v.Votes = append(v.Votes, id)
	}

	return nil
}

func (v *DeletionVote) HasVoted(userID uuid.UUID) bool {
	for _, id := range v.Votes {
		if id == userID {
			return true
		}
	}

	return false
}
