// Package address turns free-text address input into the string stored on a
// record.
package address

import (
	"context"
	"strings"
)

// Resolver formats an address typed by the user. Implementations backed by a
// geocoding service may fail; the registration flow then keeps the raw text.
type Resolver interface {
	Resolve(ctx context.Context, input string) (string, error)
}

// Normalizer is the offline Resolver. It collapses runs of whitespace and
// puts exactly one space after every comma.
type Normalizer struct{}

func (Normalizer) Resolve(_ context.Context, input string) (string, error) {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Join(strings.Fields(p), " ")
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", "), nil
}
