package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/chessboard/internal/domain"
	"github.com/alexanderramin/chessboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeveloperRepo_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteDeveloperRepo(db)
	ctx := context.Background()

	dev := testutil.NewTestDeveloper("Bali Homes")
	require.NoError(t, repo.Create(ctx, dev))

	got, err := repo.GetByID(ctx, dev.ID)
	require.NoError(t, err)
	assert.Equal(t, dev, got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessRepo_RoundTripAndCascade(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	boards := NewSQLiteChessboardRepo(db)
	repo := NewSQLiteAccessRepo(db)

	b := testutil.NewTestChessboard()
	require.NoError(t, boards.Create(ctx, b))

	now := time.Now().UTC().Truncate(time.Second)
	rec := &domain.AccessRecord{
		ChessboardID: b.ID,
		Owners:       []string{"u1"},
		Editors:      []string{"u1"},
		CreatedBy:    "u1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, repo.Create(ctx, rec))

	got, err := repo.GetByChessboard(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, got.Owners)
	assert.Equal(t, []string{"u1"}, got.Editors)
	assert.Empty(t, got.Viewers)

	require.NoError(t, boards.Delete(ctx, b.ID))
	_, err = repo.GetByChessboard(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, repo.Delete(ctx, b.ID))
}

func TestHistoryRepo_AppendOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteHistoryRepo(db)
	ctx := context.Background()

	ts := time.Now().UTC().Truncate(time.Second)
	for i, action := range []domain.HistoryAction{domain.ActionCreate, domain.ActionUpdate, domain.ActionDelete} {
		require.NoError(t, repo.Append(ctx, &domain.HistoryRecord{
			ID:           string(rune('a' + i)),
			ChessboardID: "b1",
			Action:       action,
			ActorID:      "u1",
			ActorLabel:   "Ana",
			Timestamp:    ts,
		}))
	}
	require.NoError(t, repo.Append(ctx, &domain.HistoryRecord{
		ID: "other", ChessboardID: "b2", Action: domain.ActionCreate, Timestamp: ts,
	}))

	got, err := repo.ListByChessboard(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.ActionCreate, got[0].Action)
	assert.Equal(t, domain.ActionUpdate, got[1].Action)
	assert.Equal(t, domain.ActionDelete, got[2].Action)
	assert.Equal(t, "Ana", got[0].ActorLabel)
}

func TestNotificationRepo_ListUnreadByRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.Create(ctx, &domain.Notification{
		ID: "n1", Type: domain.NotificationTypeChessboard, Action: domain.ActionCreate,
		ChessboardID: "b1", ChessboardName: "Ocean Park", CreatedBy: "u1",
		ForRoles: domain.InventoryRoles, CreatedAt: now,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{
		ID: "n2", Type: domain.NotificationTypeChessboard, Action: domain.ActionUpdate,
		ChessboardID: "b1", ChessboardName: "Ocean Park", CreatedBy: "u1",
		ForRoles: []domain.Role{domain.RoleAdmin}, CreatedAt: now.Add(time.Second),
	}))

	admin, err := repo.ListUnread(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admin, 2)
	assert.Equal(t, "n2", admin[0].ID)
	assert.Equal(t, domain.NotificationUnread, admin[0].Status)

	mod, err := repo.ListUnread(ctx, domain.RoleModerator)
	require.NoError(t, err)
	require.Len(t, mod, 1)
	assert.Equal(t, "n1", mod[0].ID)

	require.NoError(t, repo.MarkRead(ctx, "n1"))
	mod, err = repo.ListUnread(ctx, domain.RoleModerator)
	require.NoError(t, err)
	assert.Empty(t, mod)

	assert.ErrorIs(t, repo.MarkRead(ctx, "missing"), ErrNotFound)
}
