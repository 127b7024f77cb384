package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/services"
	"github.com/dmitrijs2005/radian/internal/common"
)

// Board prints the three dashboard columns.
func (a *App) Board(_ context.Context) error {
	b := a.triage.Board()
	a.writeColumn("Inbox", b.Inbox)
	a.writeColumn("Keep Users", b.Keep)
	a.writeColumn("Remove Users", b.Remove)
	return nil
}

func (a *App) writeColumn(title string, users []models.User) {
	fmt.Fprintf(a.out, "%s (%d)\n", title, len(users))
	for _, u := range users {
		fmt.Fprintf(a.out, "  %s  %s  %s\n", u.ID, u.FullName(), u.Email)
	}
}

func (a *App) Move(_ context.Context, id string, to services.Group) error {
	if err := a.triage.Move(id, to); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Moved %s to %s\n", id, to)
	return nil
}

func (a *App) AssignRemaining(_ context.Context, to services.Group) error {
	n := len(a.triage.Board().Inbox)
	if err := a.triage.AssignRemaining(to); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Moved %d users to %s\n", n, to)
	return nil
}

// Submit deletes the remove column. While the inbox still has users the guard
// message is printed and nothing is deleted.
func (a *App) Submit(ctx context.Context) error {
	ids, err := a.triage.Submit(ctx)
	if errors.Is(err, common.ErrInboxNotEmpty) {
		fmt.Fprintln(a.out, services.GuardMessage)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %d users\n", len(ids))
	return a.Board(ctx)
}

// Reset writes back the users as they were when the board was loaded.
func (a *App) Reset(ctx context.Context) error {
	if err := a.triage.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Users restored")
	return a.Board(ctx)
}
