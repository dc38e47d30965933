package project

import "context"

// ProjectService defines project administration and membership
// management (manager/admin surface).
type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	// Close marks the project closed; closed projects stop appearing in
	// allowed-project lists but keep their history.
	Close(ctx context.Context, id string) error
	List(ctx context.Context) ([]ProjectResponse, error)
	ListActive(ctx context.Context) ([]ProjectResponse, error)

	AddMember(ctx context.Context, projectID, userID string) error
	RemoveMember(ctx context.Context, memberID string) error
	ListMembers(ctx context.Context, projectID string) ([]Member, error)
}
