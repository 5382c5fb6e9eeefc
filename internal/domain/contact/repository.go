package contact

import (
	"context"
)

// SearchField selects which column a substring search runs against.
type SearchField string

const (
	SearchFirstName SearchField = "first_name"
	SearchLastName  SearchField = "last_name"
	SearchEmail     SearchField = "email"
)

// SearchFields is the order in which the search aggregator queries the store.
var SearchFields = []SearchField{SearchFirstName, SearchLastName, SearchEmail}

type Repository interface {
	FetchContacts(ctx context.Context) (Contacts, error)
	FetchContactByID(ctx context.Context, id ID) (*Contact, error)
	SearchContactsByField(ctx context.Context, field SearchField, token string) (Contacts, error)
	CreateContact(ctx context.Context, req Contact) (*Contact, error)
	UpdateContact(ctx context.Context, req Contact) (*Contact, error)
	DeleteContact(ctx context.Context, id ID) (*Contact, error)
}
