package file

const (
	// SelectFilesByOwner deliberately carries no is_trashed filter: the
	// drive projection excludes trashed records locally on every snapshot.
	SelectFilesByOwner = `
		SELECT id, uuid, owner_id, name, size_bytes, content_type, storage_path, download_url, is_trashed, created_at, trashed_at
		FROM files
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	SelectTrashedFilesByOwner = `
		SELECT id, uuid, owner_id, name, size_bytes, content_type, storage_path, download_url, is_trashed, created_at, trashed_at
		FROM files
		WHERE owner_id = $1 AND is_trashed
		ORDER BY trashed_at DESC NULLS LAST
	`
	SelectFileByUUID = `
		SELECT id, uuid, owner_id, name, size_bytes, content_type, storage_path, download_url, is_trashed, created_at, trashed_at
		FROM files
		WHERE owner_id = $1 AND uuid = $2
	`
	InsertFile = `
		INSERT INTO files (owner_id, name, size_bytes, content_type, storage_path, download_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, uuid, owner_id, name, size_bytes, content_type, storage_path, download_url, is_trashed, created_at, trashed_at
	`
	TrashFileByUUID = `
		UPDATE files
		SET is_trashed = true, trashed_at = now()
		WHERE owner_id = $1 AND uuid = $2
	`
	RestoreFileByUUID = `
		UPDATE files
		SET is_trashed = false
		WHERE owner_id = $1 AND uuid = $2
	`
	DeleteFileByUUID = `
		DELETE FROM files
		WHERE owner_id = $1 AND uuid = $2
	`
	DeleteFilesByOwner = `
		DELETE FROM files
		WHERE owner_id = $1
	`
	SelectTrashedFilesBefore = `
		SELECT id, uuid, owner_id, name, size_bytes, content_type, storage_path, download_url, is_trashed, created_at, trashed_at
		FROM files
		WHERE is_trashed AND trashed_at < $1
	`
)
