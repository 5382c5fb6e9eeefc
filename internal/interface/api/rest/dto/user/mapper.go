package user

import (
	domain "contacts-api/internal/domain/user"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Email:     uDomain.Email,
		Avatar:    uDomain.Avatar,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}
