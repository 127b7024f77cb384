package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	b := a.triage.Board()
	s := fmt.Sprintf("inbox:%d keep:%d remove:%d", len(b.Inbox), len(b.Keep), len(b.Remove))
	if a.config != nil && a.config.StorageBackend != "" {
		s = a.config.StorageBackend + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root loads the board and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to radian (type 'help' for commands)")

	if err := a.reload(ctx); err != nil {
		a.log.Error(ctx, "initial load failed", "error", err)
		fmt.Fprintln(a.out, "Error:", err)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
