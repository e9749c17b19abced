package service

import (
	"context"
	"sync/atomic"

	"github.com/alexanderramin/chessboard/internal/domain"
)

// Session serializes saves from one editing session. A second Save while one
// is running fails fast with ErrSaveInFlight instead of queueing.
//
// Two sessions editing the same chessboard are not coordinated: the last
// Update wins.
type Session struct {
	svc    ChessboardService
	actor  domain.Actor
	saving atomic.Bool
}

func NewSession(svc ChessboardService, actor domain.Actor) *Session {
	return &Session{svc: svc, actor: actor}
}

// Saving reports whether a save is outstanding.
func (s *Session) Saving() bool {
	return s.saving.Load()
}

// Save stores a snapshot of the working tree. The caller keeps its own tree
// on failure and rebuilds it from the returned document on success.
func (s *Session) Save(ctx context.Context, snapshot *domain.Chessboard) (*domain.Chessboard, error) {
	if !s.saving.CompareAndSwap(false, true) {
		return nil, ErrSaveInFlight
	}
	defer s.saving.Store(false)
	return s.svc.Save(ctx, s.actor, snapshot)
}
