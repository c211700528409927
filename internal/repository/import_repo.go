package repository

import (
	"context"
	"database/sql"

	"github.com/content-publish-api/internal/database"
	"github.com/content-publish-api/internal/models"
)

// importRepo is the concrete implementation of ImportRepository
type importRepo struct {
	db *database.DB
}

// NewImportRepo creates a new import audit repository
func NewImportRepo(db *database.DB) ImportRepository {
	return &importRepo{db: db}
}

// Create inserts a new import record, normally in pending state
func (r *importRepo) Create(ctx context.Context, record *models.ImportRecord) error {
	query := `
		INSERT INTO imports (id, source_type, source_ref, status, message, article_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID, record.SourceType, record.SourceRef, record.Status,
		nullString(record.Message), record.ArticleID, record.CreatedAt,
	)
	return err
}

// MarkSuccess finalizes a pending record with the created article's id
func (r *importRepo) MarkSuccess(ctx context.Context, id, articleID string) error {
	query := `UPDATE imports SET status = $1, article_id = $2 WHERE id = $3 AND status = $4`
	_, err := r.db.ExecContext(ctx, query, models.ImportStatusSuccess, articleID, id, models.ImportStatusPending)
	return err
}

// MarkError finalizes a pending record with the failure message
func (r *importRepo) MarkError(ctx context.Context, id, message string) error {
	query := `UPDATE imports SET status = $1, message = $2 WHERE id = $3 AND status = $4`
	_, err := r.db.ExecContext(ctx, query, models.ImportStatusError, message, id, models.ImportStatusPending)
	return err
}

// GetByID retrieves an import record by ID
func (r *importRepo) GetByID(ctx context.Context, id string) (*models.ImportRecord, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, source_type, source_ref, status, message, article_id, created_at
		FROM imports WHERE id = $1
	`, id)
	return scanImportRecord(row)
}

// List retrieves the most recent import records
func (r *importRepo) List(ctx context.Context, limit int) ([]*models.ImportRecord, error) {
	query := `
		SELECT id, source_type, source_ref, status, message, article_id, created_at
		FROM imports ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.ImportRecord
	for rows.Next() {
		record, err := scanImportRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanImportRecord(row rowScanner) (*models.ImportRecord, error) {
	var record models.ImportRecord
	var message sql.NullString

	err := row.Scan(
		&record.ID, &record.SourceType, &record.SourceRef, &record.Status,
		&message, &record.ArticleID, &record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	record.Message = message.String
	return &record, nil
}
