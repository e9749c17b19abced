package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/alexanderramin/chessboard/internal/db"
	"github.com/alexanderramin/chessboard/internal/domain"
)

type SQLiteNotificationRepo struct {
	db db.DBTX
}

func NewSQLiteNotificationRepo(db db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: db}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	roles, err := toJSON(n.ForRoles)
	if err != nil {
		return fmt.Errorf("encoding notification roles: %w", err)
	}
	status := n.Status
	if status == "" {
		status = domain.NotificationUnread
	}
	query := `INSERT INTO notifications (id, type, action, chessboard_id, chessboard_name, created_by, status, for_roles_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		n.ID, n.Type, string(n.Action), n.ChessboardID, n.ChessboardName, n.CreatedBy,
		string(status), roles, formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) ListUnread(ctx context.Context, role domain.Role) ([]*domain.Notification, error) {
	query := `SELECT id, type, action, chessboard_id, chessboard_name, created_by, status, for_roles_json, created_at
		FROM notifications WHERE status = 'unread' ORDER BY created_at DESC, rowid DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var action, status, roles, createdAt string
		if err := rows.Scan(&n.ID, &n.Type, &action, &n.ChessboardID, &n.ChessboardName,
			&n.CreatedBy, &status, &roles, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		n.Action = domain.HistoryAction(action)
		n.Status = domain.NotificationStatus(status)
		if n.ForRoles, err = fromJSON[domain.Role]("for_roles_json", roles); err != nil {
			return nil, err
		}
		if n.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		if role != "" && !slices.Contains(n.ForRoles, role) {
			continue
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return out, nil
}

func (r *SQLiteNotificationRepo) MarkRead(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET status = 'read' WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	return requireAffected(res, "notification")
}
