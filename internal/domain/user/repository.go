package user

import (
	"context"
)

type Repository interface {
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateRefreshToken(ctx context.Context, id ID, refreshToken string) error
}
