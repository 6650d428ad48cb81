package users_interfaces

import "github.com/google/uuid"

type AuditLogWriter interface {
	WriteAuditLog(message string, userID *uuid.UUID, projectID *uuid.UUID)
}

// UserRenameListener is notified after a user changes their display
// name, so features holding denormalized names can update them.
type UserRenameListener interface {
	OnUserRenamed(userID uuid.UUID, name string) error
}
