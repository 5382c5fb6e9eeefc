package contact

import (
	"time"
)

type (
	Contact struct {
		ID        uint64    `json:"id"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		BornDate  time.Time `json:"born_date"`
		AddData   string    `json:"add_data"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	Contacts     []Contact
	ResponseData struct {
		Data Contacts `json:"data"`
	}
)
