package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
	"github.com/wanpc3/Data-Privacy-Protector/models"
)

// fileRepository is the SQLite-backed implementation of [FileRepository].
// The pending detection batch is stored as a JSON column; a NULL column
// means no batch was recorded for the file.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *fileRepository) CreateFile(ctx context.Context, file FileRecord) error {
	log := logger.FromContext(ctx)

	review, err := encodeReview(file.Review)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, createFile,
		file.ID, file.PartnerID, file.Filename, string(file.Type), string(file.State),
		review, file.OriginalPath, file.ArtifactPath)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.CreateFile").Msg("error executing insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExecutingStatement
	}

	return nil
}

func (r *fileRepository) GetFile(ctx context.Context, fileID string) (FileRecord, error) {
	log := logger.FromContext(ctx)

	var f FileRecord
	var review sql.NullString
	row := r.DB.QueryRowContext(ctx, getFile, fileID)
	err := row.Scan(&f.ID, &f.PartnerID, &f.Filename, &f.Type, &f.State,
		&review, &f.OriginalPath, &f.ArtifactPath, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return FileRecord{}, ErrFileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.GetFile").Msg("error scanning row")
		return FileRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if f.Review, err = decodeReview(review); err != nil {
		return FileRecord{}, err
	}

	return f, nil
}

func (r *fileRepository) ListFilesByPartner(ctx context.Context, partnerID string) ([]FileRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getFilesByPartner, partnerID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFilesByPartner").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]FileRecord, 0, 16)
	for rows.Next() {
		var f FileRecord
		var review sql.NullString
		if err := rows.Scan(&f.ID, &f.PartnerID, &f.Filename, &f.Type, &f.State,
			&review, &f.OriginalPath, &f.ArtifactPath, &f.CreatedAt); err != nil {
			log.Err(err).Str("func", "*fileRepository.ListFilesByPartner").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if f.Review, err = decodeReview(review); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

func (r *fileRepository) MarkAnonymized(ctx context.Context, fileID, artifactPath string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, markFileAnonymized, string(models.Anonymized), artifactPath, fileID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.MarkAnonymized").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrFileNotFound
	}

	return nil
}

func (r *fileRepository) UpdateState(ctx context.Context, fileID string, state models.FileState) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, updateFileState, string(state), fileID)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.UpdateState").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrFileNotFound
	}

	return nil
}

func encodeReview(review []models.DetectedEntity) (sql.NullString, error) {
	if review == nil {
		return sql.NullString{}, nil
	}
	payload, err := json.Marshal(review)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode review batch: %w", err)
	}
	return sql.NullString{String: string(payload), Valid: true}, nil
}

func decodeReview(review sql.NullString) ([]models.DetectedEntity, error) {
	if !review.Valid {
		return nil, nil
	}
	var batch []models.DetectedEntity
	if err := json.Unmarshal([]byte(review.String), &batch); err != nil {
		return nil, fmt.Errorf("decode review batch: %w", err)
	}
	return batch, nil
}
