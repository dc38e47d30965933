package project

import "context"

// ProjectRepository defines data access methods for projects and their
// membership lists.
type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	// GetActiveByID returns the project only when its status is active.
	GetActiveByID(ctx context.Context, id string) (Project, error)
	// ListActive returns all active projects ordered by code.
	ListActive(ctx context.Context) ([]Project, error)
	// ListAllowed returns active projects the user owns or is a member
	// of, ordered by code.
	ListAllowed(ctx context.Context, userID string) ([]Project, error)
	List(ctx context.Context) ([]Project, error)
	SetStatus(ctx context.Context, id string, status Status) error

	AddMember(ctx context.Context, projectID, userID string) error
	RemoveMember(ctx context.Context, memberID string) error
	ListMembers(ctx context.Context, projectID string) ([]Member, error)
	IsMember(ctx context.Context, projectID, userID string) (bool, error)
}
