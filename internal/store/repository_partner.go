package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/wanpc3/Data-Privacy-Protector/internal/logger"
)

// partnerRepository is the SQLite-backed implementation of
// [PartnerRepository]. Detection settings are stored as a JSON array in a
// single column.
type partnerRepository struct {
	*DB
	logger *logger.Logger
}

func NewPartnerRepository(db *DB, logger *logger.Logger) PartnerRepository {
	logger.Debug().Msg("creating partner repository")
	return &partnerRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *partnerRepository) CreatePartner(ctx context.Context, partner PartnerRecord) (PartnerRecord, error) {
	log := logger.FromContext(ctx)

	settings, err := json.Marshal(partner.DetectionSettings)
	if err != nil {
		return PartnerRecord{}, fmt.Errorf("encode detection settings: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, createPartner,
		partner.ID, partner.Name, partner.Logo, partner.EncryptionKey, partner.FilePassword, string(settings))
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.CreatePartner").Msg("error executing insert")
		if isUniqueViolation(err) {
			return PartnerRecord{}, ErrPartnerAlreadyExists
		}
		return PartnerRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.GetPartner(ctx, partner.ID)
}

func (r *partnerRepository) GetPartner(ctx context.Context, partnerID string) (PartnerRecord, error) {
	return r.scanPartner(ctx, r.DB.QueryRowContext(ctx, getPartner, partnerID))
}

func (r *partnerRepository) GetPartnerByName(ctx context.Context, name string) (PartnerRecord, error) {
	return r.scanPartner(ctx, r.DB.QueryRowContext(ctx, getPartnerByName, name))
}

func (r *partnerRepository) ListPartners(ctx context.Context) ([]PartnerRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllPartners)
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.ListPartners").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	partners := make([]PartnerRecord, 0, 16)
	for rows.Next() {
		var p PartnerRecord
		var settings string
		if err := rows.Scan(&p.ID, &p.Name, &p.Logo, &p.EncryptionKey, &p.FilePassword, &settings, &p.CreatedAt); err != nil {
			log.Err(err).Str("func", "*partnerRepository.ListPartners").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err := json.Unmarshal([]byte(settings), &p.DetectionSettings); err != nil {
			return nil, fmt.Errorf("decode detection settings: %w", err)
		}
		partners = append(partners, p)
	}

	return partners, rows.Err()
}

// UpdatePartner applies a partial update. The SET clause is assembled
// dynamically with squirrel from the non-nil fields of update.
func (r *partnerRepository) UpdatePartner(ctx context.Context, partnerID string, update PartnerUpdate) (PartnerRecord, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("partners").Where(sq.Eq{"partner_id": partnerID})
	changed := false
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		changed = true
	}
	if update.Logo != nil {
		builder = builder.Set("logo", *update.Logo)
		changed = true
	}
	if update.EncryptionKey != nil {
		builder = builder.Set("encryption_key", *update.EncryptionKey)
		changed = true
	}
	if update.FilePassword != nil {
		builder = builder.Set("file_password", *update.FilePassword)
		changed = true
	}
	if update.DetectionSettings != nil {
		settings, err := json.Marshal(*update.DetectionSettings)
		if err != nil {
			return PartnerRecord{}, fmt.Errorf("encode detection settings: %w", err)
		}
		builder = builder.Set("detection_settings", string(settings))
		changed = true
	}

	if !changed {
		return r.GetPartner(ctx, partnerID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.UpdatePartner").Msg("error building update query")
		return PartnerRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.UpdatePartner").Msg("error executing update")
		if isUniqueViolation(err) {
			return PartnerRecord{}, ErrPartnerAlreadyExists
		}
		return PartnerRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return PartnerRecord{}, ErrPartnerNotFound
	}

	return r.GetPartner(ctx, partnerID)
}

func (r *partnerRepository) DeletePartner(ctx context.Context, partnerID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deletePartner, partnerID)
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.DeletePartner").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPartnerNotFound
	}

	return nil
}

func (r *partnerRepository) scanPartner(ctx context.Context, row *sql.Row) (PartnerRecord, error) {
	log := logger.FromContext(ctx)

	var p PartnerRecord
	var settings string
	err := row.Scan(&p.ID, &p.Name, &p.Logo, &p.EncryptionKey, &p.FilePassword, &settings, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return PartnerRecord{}, ErrPartnerNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*partnerRepository.scanPartner").Msg("error scanning row")
		return PartnerRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal([]byte(settings), &p.DetectionSettings); err != nil {
		return PartnerRecord{}, fmt.Errorf("decode detection settings: %w", err)
	}

	return p, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
