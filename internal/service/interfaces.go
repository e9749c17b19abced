package service

import (
	"context"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/importer"
)

// ChessboardService persists chessboards and keeps the linked complex, the
// access record, history and notifications consistent with them. Every
// write runs in one transaction.
type ChessboardService interface {
	Create(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (*domain.Chessboard, error)
	Update(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (*domain.Chessboard, error)
	Delete(ctx context.Context, actor domain.Actor, id string) error
	// Duplicate stores an unlinked copy of a chessboard under a new id and token.
	Duplicate(ctx context.Context, actor domain.Actor, id string) (*domain.Chessboard, error)
	// Save validates b and then creates it (empty ID) or updates it.
	Save(ctx context.Context, actor domain.Actor, b *domain.Chessboard) (*domain.Chessboard, error)

	Get(ctx context.Context, id string) (*domain.Chessboard, error)
	GetByPublicURL(ctx context.Context, token string) (*domain.Chessboard, error)
	List(ctx context.Context) ([]*domain.Chessboard, error)
	History(ctx context.Context, id string) ([]*domain.HistoryRecord, error)
	ListSelectableComplexes(ctx context.Context, actor domain.Actor) ([]ComplexOption, error)
	// PublicLink renders the share URL for a token.
	PublicLink(token string) string
}

// ComplexOption is one entry of the complex picker.
type ComplexOption struct {
	ID            string
	Name          string
	DeveloperName string
	HasChessboard bool
}

type DeveloperService interface {
	Create(ctx context.Context, name string) (*domain.Developer, error)
	List(ctx context.Context) ([]*domain.Developer, error)
}

type ComplexService interface {
	Create(ctx context.Context, name, developerID string) (*domain.Complex, error)
	GetByID(ctx context.Context, id string) (*domain.Complex, error)
	List(ctx context.Context, developerID string) ([]*domain.Complex, error)
}

type NotificationService interface {
	ListUnread(ctx context.Context, role domain.Role) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type ImportService interface {
	ImportChessboard(ctx context.Context, actor domain.Actor, filePath string) (*domain.Chessboard, error)
	ImportChessboardFromSchema(ctx context.Context, actor domain.Actor, schema *importer.ImportSchema) (*domain.Chessboard, error)
}
