package user

import "context"

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListActive returns active users ordered by department, full name.
	ListActive(ctx context.Context) ([]User, error)
	List(ctx context.Context) ([]User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
