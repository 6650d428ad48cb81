package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	projects_services "teamboard/internal/features/projects/services"
	users_models "teamboard/internal/features/users/models"
	"teamboard/internal/util/logger"
	"teamboard/internal/util/rate_limit"
)

// Posting limits per project. Chat is bursty but low volume.
const (
	chatRPSLimit   = 5
	chatBurstLimit = 20
)

type ChatService struct {
	chatRepository *ChatRepository
	projectService *projects_services.ProjectService
	rateLimiter    *rate_limit.RateLimiter
}

func (s *ChatService) GetMessages(projectID uuid.UUID, user *users_models.User) (*ListMessagesResponse, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view chat")
	}

	settings, err := s.getOrDefaultSettings(projectID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -settings.AutoDeleteDays)

	// Retention is enforced lazily on the read path.
	if err := s.chatRepository.PruneMessagesBefore(projectID, cutoff); err != nil {
		logger.GetLogger().Error(
			"failed to prune expired chat messages",
			"projectId", projectID.String(),
			"error", err,
		)
	}

	messages, err := s.chatRepository.GetMessagesSince(projectID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return &ListMessagesResponse{Messages: messages}, nil
}

func (s *ChatService) PostMessage(
	projectID uuid.UUID,
	request *PostMessageRequest,
	user *users_models.User,
) (*Message, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to post messages")
	}

	content := strings.TrimSpace(request.Content)
	if content == "" {
		return nil, errors.New("message content cannot be blank")
	}

	result, err := s.rateLimiter.CheckRateLimit(projectID, chatRPSLimit, chatBurstLimit)
	if err != nil {
		// Valkey being down should not silence the chat.
		logger.GetLogger().Error(
			"chat rate limit check failed",
			"projectId", projectID.String(),
			"error", err,
		)
	} else if !result.Allowed {
		return nil, errors.New("rate limit exceeded")
	}

	message := &Message{
		ID:         uuid.New(),
		ProjectID:  projectID,
		AuthorID:   user.ID,
		AuthorName: user.DisplayName(),
		Content:    content,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.chatRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

func (s *ChatService) ClearMessages(projectID uuid.UUID, user *users_models.User) error {
	isOwner, err := s.projectService.IsOwner(projectID, user.ID)
	if err != nil {
		return err
	}
	if !isOwner {
		return errors.New("only project owner can clear chat")
	}

	return s.chatRepository.ClearMessages(projectID)
}

func (s *ChatService) GetChatSettings(projectID uuid.UUID, user *users_models.User) (*ChatSettings, error) {
	isMember, err := s.projectService.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, errors.New("insufficient permissions to view chat settings")
	}

	return s.getOrDefaultSettings(projectID)
}

func (s *ChatService) SaveChatSettings(
	projectID uuid.UUID,
	request *ChatSettingsRequest,
	user *users_models.User,
) (*ChatSettings, error) {
	isOwner, err := s.projectService.IsOwner(projectID, user.ID)
	if err != nil {
		return nil, err
	}
	if !isOwner {
		return nil, errors.New("only project owner can change chat settings")
	}

	settings := &ChatSettings{
		ProjectID:      projectID,
		AutoDeleteDays: request.AutoDeleteDays,
		UpdatedAt:      time.Now().UTC(),
	}

	if err := s.chatRepository.SaveSettings(settings); err != nil {
		return nil, fmt.Errorf("failed to save chat settings: %w", err)
	}

	return settings, nil
}

// OnProjectDeleted implements projects_interfaces.ProjectDeletionListener.
// Message and settings rows cascade with the project; only the valkey
// token bucket needs an explicit reset.
func (s *ChatService) OnProjectDeleted(projectID uuid.UUID) error {
	return s.rateLimiter.ResetRateLimit(projectID)
}

func (s *ChatService) getOrDefaultSettings(projectID uuid.UUID) (*ChatSettings, error) {
	settings, err := s.chatRepository.GetSettings(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat settings: %w", err)
	}

	if settings == nil {
		return &ChatSettings{
			ProjectID:      projectID,
			AutoDeleteDays: DefaultAutoDeleteDays,
		}, nil
	}

	return settings, nil
}
