package ports

import (
	"context"

	"contacts-api/internal/domain/contact"
)

type ContactService interface {
	FindContacts(ctx context.Context) (contact.Contacts, error)
	FindContactByID(ctx context.Context, id contact.ID) (*contact.Contact, error)
	SearchContacts(ctx context.Context, token string) (contact.Contacts, error)
	FindUpcomingBirthdays(ctx context.Context) (contact.Contacts, error)
	CreateContact(ctx context.Context, c contact.Contact) (*contact.Contact, error)
	UpdateContact(ctx context.Context, c contact.Contact) (*contact.Contact, error)
	DeleteContact(ctx context.Context, id contact.ID) (*contact.Contact, error)
}
