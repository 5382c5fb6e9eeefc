package user

const (
	SelectUserByEmail = `
		SELECT id, email, password_hash, avatar, refresh_token, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, avatar)
		VALUES ($1, $2, $3)
		RETURNING
		  id, email, password_hash, avatar, refresh_token, created_at, updated_at
	`
	UpdateRefreshTokenByID = `
		UPDATE users
		SET refresh_token = $1,
		    updated_at = now()
		WHERE id = $2
	`
)
