package projects_repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	projects_dto "teamboard/internal/features/projects/dto"
	projects_models "teamboard/internal/features/projects/models"
	"teamboard/internal/storage"
)

type InvitationRepository struct{}

func (r *InvitationRepository) CreateInvitation(invitation *projects_models.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}

	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(invitation).Error
}

func (r *InvitationRepository) GetInvitationByID(invitationID uuid.UUID) (*projects_models.Invitation, error) {
	var invitation projects_models.Invitation

	if err := storage.GetDb().Where("id = ?", invitationID).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetPendingByInvitee(
	inviteeID uuid.UUID,
) ([]*projects_dto.PendingInvitationDTO, error) {
	var invitations = make([]*projects_dto.PendingInvitationDTO, 0)

	err := storage.GetDb().
		Table("invitations i").
		Select("i.id, i.project_id, p.name as project_name, u.name as inviter_name, i.created_at").
		Joins("JOIN projects p ON i.project_id = p.id").
		Joins("JOIN users u ON i.inviter_id = u.id").
		Where("i.invitee_id = ?", inviteeID).
		Order("i.created_at DESC").
		Scan(&invitations).Error

	return invitations, err
}

func (r *InvitationRepository) HasPendingInvitation(projectID, inviteeID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.Invitation{}).
		Where("project_id = ? AND invitee_id = ?", projectID, inviteeID).
		Count(&count).Error

	return count > 0, err
}

func (r *InvitationRepository) DeleteInvitation(invitationID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", invitationID).
		Delete(&projects_models.Invitation{}).Error
}

func (r *InvitationRepository) DeletePendingForMember(projectID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("project_id = ? AND invitee_id = ?", projectID, userID).
		Delete(&projects_models.Invitation{}).Error
}
