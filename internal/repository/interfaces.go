package repository

import (
	"context"

	"github.com/alexanderramin/chessboard/internal/domain"
)

type ChessboardRepo interface {
	Create(ctx context.Context, b *domain.Chessboard) error
	GetByID(ctx context.Context, id string) (*domain.Chessboard, error)
	GetByPublicURL(ctx context.Context, token string) (*domain.Chessboard, error)
	// GetByComplexID returns the chessboard linked to a complex, or ErrNotFound.
	GetByComplexID(ctx context.Context, complexID string) (*domain.Chessboard, error)
	List(ctx context.Context) ([]*domain.Chessboard, error)
	Update(ctx context.Context, b *domain.Chessboard) error
	Delete(ctx context.Context, id string) error
}

type ComplexRepo interface {
	Create(ctx context.Context, c *domain.Complex) error
	GetByID(ctx context.Context, id string) (*domain.Complex, error)
	// List returns complexes ordered by name; developerID "" means all.
	List(ctx context.Context, developerID string) ([]*domain.Complex, error)
	SetBackLink(ctx context.Context, complexID string, link domain.BackLink) error
	ClearBackLink(ctx context.Context, complexID string) error
}

type DeveloperRepo interface {
	Create(ctx context.Context, d *domain.Developer) error
	GetByID(ctx context.Context, id string) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}

type AccessRepo interface {
	Create(ctx context.Context, a *domain.AccessRecord) error
	GetByChessboard(ctx context.Context, chessboardID string) (*domain.AccessRecord, error)
	Delete(ctx context.Context, chessboardID string) error
}

type HistoryRepo interface {
	Append(ctx context.Context, h *domain.HistoryRecord) error
	ListByChessboard(ctx context.Context, chessboardID string) ([]*domain.HistoryRecord, error)
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	// ListUnread returns unread notifications addressed to role, newest first.
	ListUnread(ctx context.Context, role domain.Role) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
