package contact

import (
	"time"
)

type (
	Contact struct {
		ID        uint64
		FirstName string
		LastName  string
		Email     string
		Phone     string
		BornDate  *time.Time
		AddData   string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Contacts []*Contact
)
