// Package cli provides the interactive radian command-line client.
//
// It wires configuration, the key/value storage backend, the record store,
// the validator and the registration and triage services behind a small REPL.
//
// Key features:
//   - register: fill in the registration form field by field, with the blur
//     check after every answer and whole-form validation on submit
//   - list / show: inspect stored users (passwords are never printed)
//   - move / keepall / removeall / board: sort users between the inbox, keep
//     and remove columns of the dashboard
//   - submit / reset: delete the remove column, or restore the collection as
//     it was when the dashboard was loaded
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
