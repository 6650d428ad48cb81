package deletion

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"teamboard/internal/storage"
)

type DeletionVoteRepository struct{}

func (r *DeletionVoteRepository) GetByProject(projectID uuid.UUID) (*DeletionVote, error) {
	var vote DeletionVote

	if err := storage.GetDb().Where("project_id = ?", projectID).First(&vote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &vote, nil
}

// Save upserts the vote row. A fresh deletion request overwrites any
// outstanding vote for the project.
func (r *DeletionVoteRepository) Save(vote *DeletionVote) error {
	return storage.GetDb().Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		UpdateAll: true,
	}).Create(vote).Error
}

func (r *DeletionVoteRepository) Delete(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ?", projectID).
		Delete(&DeletionVote{}).Error
}

func (r *DeletionVoteRepository) DeleteTx(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Where("project_id = ?", projectID).Delete(&DeletionVote{}).Error
}
