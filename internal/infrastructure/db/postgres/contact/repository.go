package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"contacts-api/internal/domain/contact"
	"contacts-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) contact.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchContacts(ctx context.Context) (contact.Contacts, error) {
	return r.queryContacts(ctx, SelectContacts)
}

func (r *Repository) SearchContactsByField(
	ctx context.Context,
	field contact.SearchField,
	token string,
) (contact.Contacts, error) {
	var query string
	switch field {
	case contact.SearchFirstName:
		query = SearchContactsByFirstName
	case contact.SearchLastName:
		query = SearchContactsByLastName
	case contact.SearchEmail:
		query = SearchContactsByEmail
	default:
		return nil, fmt.Errorf("unknown search field %q", field)
	}

	return r.queryContacts(ctx, query, token)
}

func (r *Repository) queryContacts(ctx context.Context, query string, args ...any) (contact.Contacts, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cs Contacts
	for rows.Next() {
		c := new(Contact)

		if err = rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.Phone,
			&c.BornDate,
			&c.AddData,

			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, err
		}

		cs = append(cs, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&cs), nil
}

func (r *Repository) FetchContactByID(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, SelectContactByID, uint64(id)).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.BornDate,
		&c.AddData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) CreateContact(ctx context.Context, req contact.Contact) (*contact.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(
		ctx,
		InsertContact,
		req.FirstName, req.LastName, req.Email, req.Phone, toDBBornDate(req.BornDate), req.AddData,
	).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.BornDate,
		&c.AddData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) UpdateContact(ctx context.Context, req contact.Contact) (*contact.Contact, error) {
	c := new(Contact)

	err := r.db.QueryRow(ctx, UpdateContactByID,
		req.FirstName, req.LastName, req.Email, req.Phone, toDBBornDate(req.BornDate), req.AddData, uint64(req.ID),
	).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.BornDate,
		&c.AddData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}

func (r *Repository) DeleteContact(ctx context.Context, id contact.ID) (*contact.Contact, error) {
	c := new(Contact)
	err := r.db.QueryRow(ctx, DeleteContactByID, uint64(id)).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.BornDate,
		&c.AddData,

		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(c), err
}
