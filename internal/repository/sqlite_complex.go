package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

// SQLiteComplexRepo implements ComplexRepo. Complexes are owned elsewhere;
// the editor only reads them and maintains their chessboard back-link.
type SQLiteComplexRepo struct {
	db db.DBTX
}

func NewSQLiteComplexRepo(db db.DBTX) *SQLiteComplexRepo {
	return &SQLiteComplexRepo{db: db}
}

const complexColumns = `id, name, developer_id, chessboard_id, chessboard_public_id, chessboard_public_url, created_at, updated_at`

func (r *SQLiteComplexRepo) Create(ctx context.Context, c *domain.Complex) error {
	query := `INSERT INTO complexes (` + complexColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		nullableString(c.DeveloperID),
		nullableString(c.BackLink.ChessboardID),
		nullableString(c.BackLink.ChessboardPublicID),
		nullableString(c.BackLink.ChessboardPublicURL),
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting complex: %w", err)
	}
	return nil
}

func (r *SQLiteComplexRepo) GetByID(ctx context.Context, id string) (*domain.Complex, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+complexColumns+` FROM complexes WHERE id = ?`, id)
	return scanComplex(row)
}

func (r *SQLiteComplexRepo) List(ctx context.Context, developerID string) ([]*domain.Complex, error) {
	query := `SELECT ` + complexColumns + ` FROM complexes`
	var args []any
	if developerID != "" {
		query += ` WHERE developer_id = ?`
		args = append(args, developerID)
	}
	query += ` ORDER BY name COLLATE NOCASE, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing complexes: %w", err)
	}
	defer rows.Close()

	var complexes []*domain.Complex
	for rows.Next() {
		c, err := scanComplex(rows)
		if err != nil {
			return nil, err
		}
		complexes = append(complexes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating complexes: %w", err)
	}
	return complexes, nil
}

func (r *SQLiteComplexRepo) SetBackLink(ctx context.Context, complexID string, link domain.BackLink) error {
	query := `UPDATE complexes SET chessboard_id = ?, chessboard_public_id = ?, chessboard_public_url = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableString(link.ChessboardID),
		nullableString(link.ChessboardPublicID),
		nullableString(link.ChessboardPublicURL),
		formatTime(nowUTC()),
		complexID,
	)
	if err != nil {
		return fmt.Errorf("setting complex back-link: %w", err)
	}
	return requireAffected(res, "complex")
}

func (r *SQLiteComplexRepo) ClearBackLink(ctx context.Context, complexID string) error {
	return r.SetBackLink(ctx, complexID, domain.BackLink{})
}

func scanComplex(row rowScanner) (*domain.Complex, error) {
	var c domain.Complex
	var developerID, boardID, publicID, publicURL sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.Name, &developerID, &boardID, &publicID, &publicURL, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("complex: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning complex: %w", err)
	}

	c.DeveloperID = stringPtr(developerID)
	c.BackLink = domain.BackLink{
		ChessboardID:        stringPtr(boardID),
		ChessboardPublicID:  stringPtr(publicID),
		ChessboardPublicURL: stringPtr(publicURL),
	}
	if c.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
