package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSaver holds every Save until release is closed.
type blockingSaver struct {
	ChessboardService
	entered chan struct{}
	release chan struct{}
	err     error
	calls   int
}

func (b *blockingSaver) Save(ctx context.Context, actor domain.Actor, doc *domain.Chessboard) (*domain.Chessboard, error) {
	b.calls++
	b.entered <- struct{}{}
	<-b.release
	if b.err != nil {
		return nil, b.err
	}
	out := doc.Clone()
	out.ID = "saved"
	return out, nil
}

func TestSession_SecondSaveWhileInFlight(t *testing.T) {
	saver := &blockingSaver{entered: make(chan struct{}, 1), release: make(chan struct{})}
	sess := NewSession(saver, testActor)
	snapshot := editor.New(16000).Board()

	done := make(chan error, 1)
	go func() {
		_, err := sess.Save(context.Background(), snapshot)
		done <- err
	}()
	<-saver.entered
	assert.True(t, sess.Saving())

	_, err := sess.Save(context.Background(), snapshot)
	assert.ErrorIs(t, err, ErrSaveInFlight)
	assert.Equal(t, ClassPrecondition, Classify(err))

	close(saver.release)
	require.NoError(t, <-done)
	assert.False(t, sess.Saving())
	assert.Equal(t, 1, saver.calls)
}

func TestSession_FailureLeavesSnapshotAndUnlocks(t *testing.T) {
	saver := &blockingSaver{
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
		err:     errors.New("store unavailable"),
	}
	close(saver.release)
	sess := NewSession(saver, testActor)

	ed := editor.New(16000)
	before := ed.Board()
	_, err := sess.Save(context.Background(), ed.Board())
	require.Error(t, err)
	assert.Equal(t, before, ed.Board(), "working tree is untouched by a failed save")
	assert.False(t, sess.Saving())

	// The flag is released, so the user can retry.
	_, err = sess.Save(context.Background(), ed.Board())
	assert.EqualError(t, err, "store unavailable")
	assert.Equal(t, 2, saver.calls)
}
