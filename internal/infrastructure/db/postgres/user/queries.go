package user

const (
	SelectUserByUUID = `
		SELECT id, uuid, telegram_id, username, first_name, last_name, created_at, updated_at
		FROM users
		WHERE uuid = $1
	`
	SelectUserByTelegramID = `
		SELECT id, uuid, telegram_id, username, first_name, last_name, created_at, updated_at
		FROM users
		WHERE telegram_id = $1
	`
	InsertUser = `
		INSERT INTO users (telegram_id, username, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, telegram_id, username, first_name, last_name, created_at, updated_at
	`
	SelectIdByUUID = `SELECT id FROM users WHERE uuid = $1::uuid`
)
