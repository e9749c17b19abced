package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

// SQLiteHistoryRepo is the append-only chessboard audit log.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

func NewSQLiteHistoryRepo(db db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: db}
}

func (r *SQLiteHistoryRepo) Append(ctx context.Context, h *domain.HistoryRecord) error {
	query := `INSERT INTO chessboard_history (id, chessboard_id, action, actor_id, actor_label, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.ChessboardID, string(h.Action), h.ActorID, h.ActorLabel, formatTime(h.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("appending history: %w", err)
	}
	return nil
}

// ListByChessboard returns entries oldest first. Insertion order breaks ties
// between entries written within the same second.
func (r *SQLiteHistoryRepo) ListByChessboard(ctx context.Context, chessboardID string) ([]*domain.HistoryRecord, error) {
	query := `SELECT id, chessboard_id, action, actor_id, actor_label, timestamp
		FROM chessboard_history WHERE chessboard_id = ? ORDER BY timestamp, rowid`
	rows, err := r.db.QueryContext(ctx, query, chessboardID)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var out []*domain.HistoryRecord
	for rows.Next() {
		var h domain.HistoryRecord
		var action, ts string
		if err := rows.Scan(&h.ID, &h.ChessboardID, &action, &h.ActorID, &h.ActorLabel, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		h.Action = domain.HistoryAction(action)
		if h.Timestamp, err = parseTime("timestamp", ts); err != nil {
			return nil, err
		}
		out = append(out, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}
	return out, nil
}
