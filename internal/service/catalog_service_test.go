package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogServices_CreateAndList(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	devs := NewDeveloperService(h.developers)
	complexes := NewComplexService(h.complexes, h.developers)

	_, err := devs.Create(ctx, "   ")
	assert.Error(t, err)

	dev, err := devs.Create(ctx, " Bali Homes ")
	require.NoError(t, err)
	assert.Equal(t, "Bali Homes", dev.Name)

	cx, err := complexes.Create(ctx, "Ocean Park", dev.ID)
	require.NoError(t, err)
	require.NotNil(t, cx.DeveloperID)

	_, err = complexes.Create(ctx, "Nowhere", "missing-dev")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	standalone, err := complexes.Create(ctx, "Standalone", "")
	require.NoError(t, err)
	assert.Nil(t, standalone.DeveloperID)

	mine, err := complexes.List(ctx, dev.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, cx.ID, mine[0].ID)

	list, err := devs.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotificationService_MarkRead(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.svc.Create(ctx, testActor, draft(h.complex(t, "Ocean Park")))
	require.NoError(t, err)

	svc := NewNotificationService(h.notifications)
	unread, err := svc.ListUnread(ctx, domain.RoleModerator)
	require.NoError(t, err)
	require.Len(t, unread, 1)

	require.NoError(t, svc.MarkRead(ctx, unread[0].ID))
	unread, err = svc.ListUnread(ctx, domain.RoleModerator)
	require.NoError(t, err)
	assert.Empty(t, unread)
}
