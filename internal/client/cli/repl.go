package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/radian/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  register                         fill in and submit the registration form
  (l)ist                           list registered users
  show <id>                        show one user
  board                            show the dashboard columns
  move <id> <inbox|keep|remove>    move a user between columns
  keepall                          move the whole inbox to keep
  removeall                        move the whole inbox to remove
  submit                           delete the users in the remove column
  reset                            restore the users as they were when loaded
  exit | quit                      leave the program`

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Board(ctx context.Context) error
	Move(ctx context.Context, id string, to services.Group) error
	AssignRemaining(ctx context.Context, to services.Group) error
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or exit/quit and dispatches
// them to a. Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("radian %s> ", statusFn()))
		line, ok := nextLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "register":
			err = a.Register(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			err = a.Show(ctx, args[0])

		case "board":
			err = a.Board(ctx)

		case "move":
			if len(args) != 2 {
				printlnFn("Usage: move <id> <inbox|keep|remove>")
				continue
			}
			var g services.Group
			if g, err = services.ParseGroup(args[1]); err == nil {
				err = a.Move(ctx, args[0], g)
			}

		case "keepall":
			err = a.AssignRemaining(ctx, services.GroupKeep)

		case "removeall":
			err = a.AssignRemaining(ctx, services.GroupRemove)

		case "submit":
			err = a.Submit(ctx)

		case "reset":
			err = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
