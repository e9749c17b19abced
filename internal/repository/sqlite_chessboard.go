package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

// SQLiteChessboardRepo implements ChessboardRepo. The section tree is stored
// as one JSON document per chessboard.
type SQLiteChessboardRepo struct {
	db db.DBTX
}

func NewSQLiteChessboardRepo(db db.DBTX) *SQLiteChessboardRepo {
	return &SQLiteChessboardRepo{db: db}
}

const chessboardColumns = `id, name, complex_id, exchange_rate, sections_json, public_url, created_by, updated_by, created_at, updated_at`

func (r *SQLiteChessboardRepo) Create(ctx context.Context, b *domain.Chessboard) error {
	sections, err := json.Marshal(b.Sections)
	if err != nil {
		return fmt.Errorf("encoding sections: %w", err)
	}
	query := `INSERT INTO chessboards (` + chessboardColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		b.ID,
		b.Name,
		nullableString(b.ComplexID),
		b.ExchangeRate,
		string(sections),
		b.PublicURL,
		b.CreatedBy,
		b.UpdatedBy,
		formatTime(b.CreatedAt),
		formatTime(b.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return conflictError("inserting chessboard", err)
		}
		return fmt.Errorf("inserting chessboard: %w", err)
	}
	return nil
}

func (r *SQLiteChessboardRepo) GetByID(ctx context.Context, id string) (*domain.Chessboard, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+chessboardColumns+` FROM chessboards WHERE id = ?`, id)
	return scanChessboard(row)
}

func (r *SQLiteChessboardRepo) GetByPublicURL(ctx context.Context, token string) (*domain.Chessboard, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+chessboardColumns+` FROM chessboards WHERE public_url = ?`, token)
	return scanChessboard(row)
}

func (r *SQLiteChessboardRepo) GetByComplexID(ctx context.Context, complexID string) (*domain.Chessboard, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+chessboardColumns+` FROM chessboards WHERE complex_id = ?`, complexID)
	return scanChessboard(row)
}

func (r *SQLiteChessboardRepo) List(ctx context.Context) ([]*domain.Chessboard, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+chessboardColumns+` FROM chessboards ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing chessboards: %w", err)
	}
	defer rows.Close()

	var boards []*domain.Chessboard
	for rows.Next() {
		b, err := scanChessboard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chessboards: %w", err)
	}
	return boards, nil
}

// Update replaces every mutable column. The public token and creation audit
// fields are immutable.
func (r *SQLiteChessboardRepo) Update(ctx context.Context, b *domain.Chessboard) error {
	sections, err := json.Marshal(b.Sections)
	if err != nil {
		return fmt.Errorf("encoding sections: %w", err)
	}
	query := `UPDATE chessboards SET name = ?, complex_id = ?, exchange_rate = ?, sections_json = ?, updated_by = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		b.Name,
		nullableString(b.ComplexID),
		b.ExchangeRate,
		string(sections),
		b.UpdatedBy,
		formatTime(b.UpdatedAt),
		b.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return conflictError("updating chessboard", err)
		}
		return fmt.Errorf("updating chessboard: %w", err)
	}
	return requireAffected(res, "chessboard")
}

func (r *SQLiteChessboardRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM chessboards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting chessboard: %w", err)
	}
	return requireAffected(res, "chessboard")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanChessboard(row rowScanner) (*domain.Chessboard, error) {
	var b domain.Chessboard
	var complexID sql.NullString
	var sectionsJSON, createdAt, updatedAt string

	err := row.Scan(
		&b.ID, &b.Name, &complexID, &b.ExchangeRate, &sectionsJSON,
		&b.PublicURL, &b.CreatedBy, &b.UpdatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("chessboard: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning chessboard: %w", err)
	}

	b.ComplexID = stringPtr(complexID)
	if err := json.Unmarshal([]byte(sectionsJSON), &b.Sections); err != nil {
		return nil, fmt.Errorf("decoding sections of chessboard %s: %w", b.ID, err)
	}
	if b.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// requireAffected turns a zero-row write into ErrNotFound.
func requireAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", entity, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
