package store

const (
	createPartner = `
		INSERT INTO partners (
			partner_id,
			name,
			logo,
			encryption_key,
			file_password,
			detection_settings
		) VALUES (?, ?, ?, ?, ?, ?);`

	getPartner = `
		SELECT
			partner_id,
			name,
			logo,
			encryption_key,
			file_password,
			detection_settings,
			created_at
		FROM partners
		WHERE partner_id = ?;`

	getPartnerByName = `
		SELECT
			partner_id,
			name,
			logo,
			encryption_key,
			file_password,
			detection_settings,
			created_at
		FROM partners
		WHERE name = ?;`

	getAllPartners = `
		SELECT
			partner_id,
			name,
			logo,
			encryption_key,
			file_password,
			detection_settings,
			created_at
		FROM partners
		ORDER BY created_at, partner_id;`

	deletePartner = `DELETE FROM partners WHERE partner_id = ?;`

	createFile = `
		INSERT INTO files (
			file_id,
			partner_id,
			filename,
			type,
			state,
			review,
			original_path,
			artifact_path
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?);`

	getFile = `
		SELECT
			file_id,
			partner_id,
			filename,
			type,
			state,
			review,
			original_path,
			artifact_path,
			created_at
		FROM files
		WHERE file_id = ?;`

	getFilesByPartner = `
		SELECT
			file_id,
			partner_id,
			filename,
			type,
			state,
			review,
			original_path,
			artifact_path,
			created_at
		FROM files
		WHERE partner_id = ?
		ORDER BY created_at, file_id;`

	markFileAnonymized = `
		UPDATE files
		SET state = ?, artifact_path = ?, review = NULL
		WHERE file_id = ?;`

	updateFileState = `
		UPDATE files
		SET state = ?
		WHERE file_id = ?;`

	appendAuditEntry = `
		INSERT INTO audit_log (file_id, detect, total, column_name)
		VALUES (?, ?, ?, ?);`

	getAuditEntriesByFile = `
		SELECT file_id, detect, total, column_name
		FROM audit_log
		WHERE file_id = ?
		ORDER BY id;`
)
