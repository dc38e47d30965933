package user

import "context"

// UserService defines account administration (admin surface).
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	ListActive(ctx context.Context) ([]UserResponse, error)
}
