// Package validation checks registration form input.
//
// Each form field has one rule. A rule returns the message to show the user,
// or "" when the value is acceptable. Validate runs a single rule (the
// "blur" check), ValidateWithDependents also re-checks fields coupled to it,
// and ValidateAll walks the whole form in declared field order.
//
// The username rule consults a UsernameChecker (the record store) so a
// username already in use is rejected. That check is best effort: nothing
// prevents another writer from storing the same username afterwards.
package validation
