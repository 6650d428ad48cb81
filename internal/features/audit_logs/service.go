package audit_logs

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	users_models "teamboard/internal/features/users/models"
)

// MembershipChecker answers whether a user belongs to a project. The
// projects feature provides the implementation via SetupDependencies.
type MembershipChecker interface {
	IsMember(projectID uuid.UUID, userID uuid.UUID) (bool, error)
}

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	membershipChecker  MembershipChecker
	logger             *slog.Logger
}

func (s *AuditLogService) SetMembershipChecker(checker MembershipChecker) {
	s.membershipChecker = checker
}

func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	projectID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.auditLogRepository.Create(auditLog)
	if err != nil {
		s.logger.Error("failed to create audit log", "error", err)
		return
	}
}

func (s *AuditLogService) GetProjectAuditLogs(
	projectID uuid.UUID,
	user *users_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	isMember, err := s.membershipChecker.IsMember(projectID, user.ID)
	if err != nil {
		return nil, err
	}

	if !isMember {
		return nil, errors.New("only project members can view project audit logs")
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByProject(projectID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     int64(len(auditLogs)),
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *AuditLogService) GetOwnAuditLogs(
	user *users_models.User,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByUser(user.ID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     int64(len(auditLogs)),
		Limit:     limit,
		Offset:    offset,
	}, nil
}
