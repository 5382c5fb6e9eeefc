package ports

import (
	"context"

	"contacts-api/internal/domain/user"
)

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	CreateUser(ctx context.Context, email, password string) (*user.User, error)
	StoreRefreshToken(ctx context.Context, id user.ID, refreshToken string) error
}
