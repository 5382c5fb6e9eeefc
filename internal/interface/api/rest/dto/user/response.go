package user

import (
	"time"
)

type User struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
