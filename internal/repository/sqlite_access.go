package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

// SQLiteAccessRepo stores one access record per chessboard, keyed by the
// chessboard id. Rows cascade away with their chessboard.
type SQLiteAccessRepo struct {
	db db.DBTX
}

func NewSQLiteAccessRepo(db db.DBTX) *SQLiteAccessRepo {
	return &SQLiteAccessRepo{db: db}
}

func (r *SQLiteAccessRepo) Create(ctx context.Context, a *domain.AccessRecord) error {
	owners, err := toJSON(a.Owners)
	if err != nil {
		return fmt.Errorf("encoding owners: %w", err)
	}
	editors, err := toJSON(a.Editors)
	if err != nil {
		return fmt.Errorf("encoding editors: %w", err)
	}
	viewers, err := toJSON(a.Viewers)
	if err != nil {
		return fmt.Errorf("encoding viewers: %w", err)
	}
	query := `INSERT INTO chessboard_access (chessboard_id, owners_json, editors_json, viewers_json, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ChessboardID, owners, editors, viewers, a.CreatedBy,
		formatTime(a.CreatedAt), formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting access record: %w", err)
	}
	return nil
}

func (r *SQLiteAccessRepo) GetByChessboard(ctx context.Context, chessboardID string) (*domain.AccessRecord, error) {
	query := `SELECT chessboard_id, owners_json, editors_json, viewers_json, created_by, created_at, updated_at
		FROM chessboard_access WHERE chessboard_id = ?`
	var a domain.AccessRecord
	var owners, editors, viewers, createdAt, updatedAt string
	err := r.db.QueryRowContext(ctx, query, chessboardID).Scan(
		&a.ChessboardID, &owners, &editors, &viewers, &a.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("access record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning access record: %w", err)
	}

	if a.Owners, err = fromJSON[string]("owners_json", owners); err != nil {
		return nil, err
	}
	if a.Editors, err = fromJSON[string]("editors_json", editors); err != nil {
		return nil, err
	}
	if a.Viewers, err = fromJSON[string]("viewers_json", viewers); err != nil {
		return nil, err
	}
	if a.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete is a no-op when no record exists.
func (r *SQLiteAccessRepo) Delete(ctx context.Context, chessboardID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chessboard_access WHERE chessboard_id = ?`, chessboardID); err != nil {
		return fmt.Errorf("deleting access record: %w", err)
	}
	return nil
}
