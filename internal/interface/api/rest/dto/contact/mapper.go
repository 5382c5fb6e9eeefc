package contact

import (
	"errors"
	"strings"
	"time"

	domain "contacts-api/internal/domain/contact"
)

// Field defaults applied when the request omits an optional field.
const (
	DefaultFirstName = "Max"
	DefaultLastName  = "Somebody"
	DefaultPhone     = "+380441234567"
	DefaultAddData   = "some text"
)

func ToResponseContact(cDomain domain.Contact) Contact {
	var c = Contact{
		ID:        uint64(cDomain.ID),
		FirstName: cDomain.FirstName,
		LastName:  cDomain.LastName,
		Email:     cDomain.Email,
		Phone:     cDomain.Phone,
		BornDate:  cDomain.BornDate,
		AddData:   cDomain.AddData,
		CreatedAt: cDomain.CreatedAt,
		UpdatedAt: cDomain.UpdatedAt,
	}

	return c
}

func ToResponseContacts(csDomain domain.Contacts) Contacts {
	cs := make(Contacts, len(csDomain))
	for idx, c := range csDomain {
		cs[idx] = ToResponseContact(*c)
	}

	return cs
}

func ToDomainContact(cRequest Request) (domain.Contact, error) {
	d, err := parseBornDate(cRequest.BornDate)
	if err != nil {
		return domain.Contact{}, err
	}

	// Stored in normalized form so the unique constraint compares the same
	// string the validator checked.
	var c = domain.Contact{
		FirstName: withDefault(cRequest.FirstName, DefaultFirstName),
		LastName:  withDefault(cRequest.LastName, DefaultLastName),
		Email:     strings.ToLower(strings.TrimSpace(cRequest.Email)),
		Phone:     withDefault(cRequest.Phone, DefaultPhone),
		BornDate:  d,
		AddData:   withDefault(cRequest.AddData, DefaultAddData),
	}

	return c, nil
}

func parseBornDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	return time.Time{}, errors.New("invalid born_date format, want YYYY-MM-DD or RFC3339")
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
