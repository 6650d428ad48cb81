package projects_repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projects_models "teamboard/internal/features/projects/models"
	"teamboard/internal/storage"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProjectName(projectID uuid.UUID, name string) error {
	return storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Update("name", name).Error
}

func (r *ProjectRepository) UpdateOwnerName(ownerID uuid.UUID, name string) error {
	return storage.GetDb().
		Model(&projects_models.Project{}).
		Where("owner_id = ?", ownerID).
		Update("owner_name", name).Error
}

// DeleteProjectTx removes the project row inside the given
// transaction. Child rows go with it through ON DELETE CASCADE.
func (r *ProjectRepository) DeleteProjectTx(tx *gorm.DB, projectID uuid.UUID) error {
	return tx.Where("id = ?", projectID).Delete(&projects_models.Project{}).Error
}
