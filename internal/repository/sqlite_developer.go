package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

type SQLiteDeveloperRepo struct {
	db db.DBTX
}

func NewSQLiteDeveloperRepo(db db.DBTX) *SQLiteDeveloperRepo {
	return &SQLiteDeveloperRepo{db: db}
}

func (r *SQLiteDeveloperRepo) Create(ctx context.Context, d *domain.Developer) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO developers (id, name, created_at) VALUES (?, ?, ?)`,
		d.ID, d.Name, formatTime(d.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting developer: %w", err)
	}
	return nil
}

func (r *SQLiteDeveloperRepo) GetByID(ctx context.Context, id string) (*domain.Developer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, created_at FROM developers WHERE id = ?`, id)
	d, err := scanDeveloper(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("developer: %w", ErrNotFound)
	}
	return d, err
}

func (r *SQLiteDeveloperRepo) List(ctx context.Context) ([]*domain.Developer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at FROM developers ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("listing developers: %w", err)
	}
	defer rows.Close()

	var devs []*domain.Developer
	for rows.Next() {
		d, err := scanDeveloper(rows)
		if err != nil {
			return nil, err
		}
		devs = append(devs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating developers: %w", err)
	}
	return devs, nil
}

// scanDeveloper returns sql.ErrNoRows unwrapped so GetByID can map it.
func scanDeveloper(row rowScanner) (*domain.Developer, error) {
	var d domain.Developer
	var createdAt string
	if err := row.Scan(&d.ID, &d.Name, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning developer: %w", err)
	}
	var err error
	if d.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return nil, err
	}
	return &d, nil
}
