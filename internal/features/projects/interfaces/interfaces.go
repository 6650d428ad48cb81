package projects_interfaces

import "github.com/google/uuid"

// ProjectDeletionListener lets features holding per-project state
// clean it up after a project is deleted.
type ProjectDeletionListener interface {
	OnProjectDeleted(projectID uuid.UUID) error
}

// MemberRemovalListener lets features holding per-member state inside
// a project clean it up when the member is removed.
type MemberRemovalListener interface {
	OnMemberRemoved(projectID uuid.UUID, userID uuid.UUID) error
}
