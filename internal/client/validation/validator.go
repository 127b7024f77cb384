package validation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/logging"
)

// UsernameChecker reports whether a username is already stored.
type UsernameChecker interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
}

// Result is the outcome of one field check.
type Result struct {
	Field   models.Field
	Message string
}

func (r Result) OK() bool { return r.Message == "" }

type Validator struct {
	users UsernameChecker
	log   logging.Logger
	now   func() time.Time
	rules map[models.Field]Rule
}

type Option func(*Validator)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// New returns a Validator. users may be nil, which disables the uniqueness
// check on usernames.
func New(users UsernameChecker, log logging.Logger, opts ...Option) *Validator {
	v := &Validator{
		users: users,
		log:   log.With("module", "validation"),
		now:   time.Now,
		rules: defaultRules(),
	}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Validate runs the rule of a single field. A field without a rule is
// always valid.
func (v *Validator) Validate(ctx context.Context, field models.Field, f *models.Form) Result {
	rule, ok := v.rules[field]
	if !ok || f == nil {
		return Result{Field: field}
	}
	return Result{Field: field, Message: rule(ctx, v, f)}
}

var dependents = map[models.Field][]models.Field{
	models.FieldPassword:        {models.FieldConfirmPassword},
	models.FieldConfirmPassword: {models.FieldPassword},
}

// Dependents lists the fields whose validity depends on field.
func Dependents(field models.Field) []models.Field {
	return dependents[field]
}

// ValidateWithDependents validates field followed by its dependents. An empty
// dependent is skipped so editing the password does not complain about a
// confirmation that has not been typed yet.
func (v *Validator) ValidateWithDependents(ctx context.Context, field models.Field, f *models.Form) []Result {
	out := []Result{v.Validate(ctx, field, f)}
	for _, d := range Dependents(field) {
		if d == models.FieldConfirmPassword && f != nil && f.ConfirmPassword == "" {
			continue
		}
		out = append(out, v.Validate(ctx, d, f))
	}
	return out
}

// Report collects the failing fields of a whole-form validation.
type Report struct {
	Errors map[models.Field]string
	First  models.Field
}

func (r Report) Valid() bool { return len(r.Errors) == 0 }

// Messages returns the failing messages in declared field order.
func (r Report) Messages() []Result {
	out := make([]Result, 0, len(r.Errors))
	for _, field := range models.FieldOrder {
		if msg, ok := r.Errors[field]; ok {
			out = append(out, Result{Field: field, Message: msg})
		}
	}
	return out
}

// ValidateAll checks every field in declared order.
func (v *Validator) ValidateAll(ctx context.Context, f *models.Form) Report {
	r := Report{Errors: map[models.Field]string{}}
	for _, field := range models.FieldOrder {
		res := v.Validate(ctx, field, f)
		if res.OK() {
			continue
		}
		if r.First == "" {
			r.First = field
		}
		r.Errors[field] = res.Message
	}
	return r
}

// Error carries a failed Report through error returns.
type Error struct {
	Report Report
}

func (e *Error) Error() string {
	msgs := e.Report.Messages()
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, fmt.Sprintf("%s: %s", m.Field, m.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
