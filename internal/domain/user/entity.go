package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Email        string
		PasswordHash string
		Avatar       string
		RefreshToken *string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
