package account

const (
	SelectAccountByUUID = `
		SELECT id, uuid, email, password_hash, display_name, photo_url, created_at, updated_at
		FROM accounts
		WHERE uuid = $1
	`
	SelectAccountByEmail = `
		SELECT id, uuid, email, password_hash, display_name, photo_url, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	InsertAccount = `
		INSERT INTO accounts (email, password_hash, display_name, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, email, password_hash, display_name, photo_url, created_at, updated_at
	`
	UpdateAccountByUUID = `
		UPDATE accounts
		SET display_name = $1,
		    photo_url = $2,
		    updated_at = now()
		WHERE uuid = $3
		RETURNING
		  id, uuid, email, password_hash, display_name, photo_url, created_at, updated_at
	`
	SelectIdByUUID  = `SELECT id FROM accounts WHERE uuid = $1::uuid`
	DeleteAccountByID = `
		DELETE FROM accounts
		WHERE id = $1
		RETURNING
		  id, uuid, email, password_hash, display_name, photo_url, created_at, updated_at
	`
)
