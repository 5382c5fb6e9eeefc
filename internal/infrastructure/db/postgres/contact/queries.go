package contact

const (
	SelectContacts = `
		SELECT id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
		FROM contacts
	`
	SelectContactByID = `
		SELECT id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`
	SearchContactsByFirstName = `
		SELECT id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
		FROM contacts
		WHERE first_name ILIKE '%' || $1 || '%'
	`
	SearchContactsByLastName = `
		SELECT id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
		FROM contacts
		WHERE last_name ILIKE '%' || $1 || '%'
	`
	SearchContactsByEmail = `
		SELECT id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
		FROM contacts
		WHERE email ILIKE '%' || $1 || '%'
	`
	InsertContact = `
		INSERT INTO contacts (first_name, last_name, email, phone, born_date, add_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
	`
	UpdateContactByID = `
		UPDATE contacts
		SET first_name = $1,
		    last_name = $2,
		    email = $3,
		    phone = $4,
		    born_date = $5,
		    add_data = $6,
		    updated_at = now()
		WHERE id = $7
		RETURNING
		  id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
	`
	DeleteContactByID = `
		DELETE FROM contacts
		WHERE id = $1
		RETURNING
		  id, first_name, last_name, email, phone, born_date, add_data, created_at, updated_at
	`
)
