package contact

import (
	"time"
)

type (
	ID      uint64
	Contact struct {
		ID        ID
		FirstName string
		LastName  string
		Email     string
		Phone     string
		BornDate  time.Time
		AddData   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
