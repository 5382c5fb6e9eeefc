package ports

import (
	"contacts-api/internal/domain/user"
)

type Auth interface {
	GenerateTokens(u *user.User, requestPassword string) (access string, refresh string, err error)
}
