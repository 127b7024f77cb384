package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/radian/internal/client/services"
	"github.com/dmitrijs2005/radian/internal/common"
	"github.com/stretchr/testify/require"
)

func TestBoard_TriageFlow(t *testing.T) {
	ctx := context.Background()
	a, out, store := newTestApp(t, "")
	seed(t, store,
		storedUser("user_a", "Ann"),
		storedUser("user_b", "Bob"),
		storedUser("user_c", "Cid"),
	)
	require.NoError(t, a.reload(ctx))

	require.NoError(t, a.Move(ctx, "user_a", services.GroupRemove))
	require.Contains(t, out.String(), "Moved user_a to remove")

	out.Reset()
	require.NoError(t, a.Submit(ctx))
	require.Contains(t, out.String(), services.GuardMessage)
	users, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	out.Reset()
	require.NoError(t, a.AssignRemaining(ctx, services.GroupKeep))
	require.Contains(t, out.String(), "Moved 2 users to keep")

	out.Reset()
	require.NoError(t, a.Board(ctx))
	require.Contains(t, out.String(), "Inbox (0)")
	require.Contains(t, out.String(), "Keep Users (2)")
	require.Contains(t, out.String(), "Remove Users (1)")

	out.Reset()
	require.NoError(t, a.Submit(ctx))
	require.Contains(t, out.String(), "Removed 1 users")
	require.Contains(t, out.String(), "Inbox (2)")

	users, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "user_b", users[0].ID)
}

func TestBoard_ResetRestoresLoadedUsers(t *testing.T) {
	ctx := context.Background()
	a, out, store := newTestApp(t, "")
	seed(t, store, storedUser("user_a", "Ann"), storedUser("user_b", "Bob"))
	require.NoError(t, a.reload(ctx))

	require.NoError(t, a.AssignRemaining(ctx, services.GroupRemove))
	require.NoError(t, a.Submit(ctx))
	users, err := store.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	// Reset goes back to the state of the last load, which is now empty.
	out.Reset()
	require.NoError(t, a.Reset(ctx))
	require.Contains(t, out.String(), "Users restored")
	require.Contains(t, out.String(), "Inbox (0)")
}

func TestBoard_ResetUndoesExternalWrites(t *testing.T) {
	ctx := context.Background()
	a, _, store := newTestApp(t, "")
	seed(t, store, storedUser("user_a", "Ann"))
	require.NoError(t, a.reload(ctx))

	require.NoError(t, store.Upsert(ctx, storedUser("user_z", "Zed")))
	require.NoError(t, a.Reset(ctx))

	users, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "user_a", users[0].ID)
}

func TestBoard_MoveErrors(t *testing.T) {
	ctx := context.Background()
	a, _, _ := newTestApp(t, "")
	require.NoError(t, a.reload(ctx))

	require.ErrorIs(t, a.Move(ctx, "user_missing", services.GroupKeep), common.ErrorNotFound)
	require.ErrorIs(t, a.AssignRemaining(ctx, services.GroupInbox), common.ErrUnknownGroup)
}

func TestBoard_TwoRemovedOneUnassignedThenKept(t *testing.T) {
	ctx := context.Background()
	a, out, store := newTestApp(t, "")
	seed(t, store,
		storedUser("user_a", "Ann"),
		storedUser("user_b", "Bob"),
		storedUser("user_c", "Cid"),
	)
	require.NoError(t, a.reload(ctx))

	require.NoError(t, a.Move(ctx, "user_a", services.GroupRemove))
	require.NoError(t, a.Move(ctx, "user_c", services.GroupRemove))

	out.Reset()
	require.NoError(t, a.Submit(ctx))
	require.Contains(t, out.String(), services.GuardMessage)
	users, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	require.NoError(t, a.Move(ctx, "user_b", services.GroupKeep))

	out.Reset()
	require.NoError(t, a.Submit(ctx))
	require.Contains(t, out.String(), "Removed 2 users")
	require.NotContains(t, out.String(), services.GuardMessage)

	users, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "user_b", users[0].ID)
}
