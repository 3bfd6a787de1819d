package store

import (
	"context"
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
)

// auditRepository is the SQLite-backed implementation of [AuditRepository].
type auditRepository struct {
	*DB
	logger *logger.Logger
}

func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("creating audit repository")
	return &auditRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *auditRepository) AppendEntries(ctx context.Context, entries []AuditRecord) error {
	log := logger.FromContext(ctx)

	if len(entries) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendEntries").Msg("error during opening transaction")
		return fmt.Errorf("error during opening transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, appendAuditEntry)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.AppendEntries").Msg("error during preparing statement")
		return err
	}
	defer stmt.Close()

	for _, entry := range entries {
		if _, err := stmt.ExecContext(ctx, entry.FileID, entry.Detect, entry.Total, entry.Column); err != nil {
			log.Err(err).Str("func", "*auditRepository.AppendEntries").Msg("error executing prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return tx.Commit()
}

func (r *auditRepository) ListByFile(ctx context.Context, fileID string) ([]AuditRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAuditEntriesByFile, fileID)
	if err != nil {
		log.Err(err).Str("func", "*auditRepository.ListByFile").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]AuditRecord, 0, 16)
	for rows.Next() {
		var e AuditRecord
		if err := rows.Scan(&e.FileID, &e.Detect, &e.Total, &e.Column); err != nil {
			log.Err(err).Str("func", "*auditRepository.ListByFile").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
