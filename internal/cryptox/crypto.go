// Package cryptox hashes registrant passwords and mints identifiers.
package cryptox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/radian/internal/common"
)

// DefaultCost matches the cost the stored hashes have always used.
const DefaultCost = 10

var generateFromPassword = bcrypt.GenerateFromPassword

type hashResult struct {
	hash []byte
	err  error
}

// HashPassword computes a bcrypt hash of password on its own goroutine and
// waits for it or for ctx to end. A cost outside bcrypt's range falls back to
// DefaultCost. When ctx ends first the hash keeps computing in the background
// and its result is dropped.
func HashPassword(ctx context.Context, password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	pw := []byte(password)
	generate := generateFromPassword
	done := make(chan hashResult, 1)
	go func() {
		defer common.WipeByteArray(pw)
		h, err := generate(pw, cost)
		done <- hashResult{hash: h, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("hash password: %w", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("hash password: %w", r.err)
		}
		return string(r.hash), nil
	}
}

// NewUserID returns a fresh record identifier, "user_" followed by a v4 UUID.
func NewUserID() string {
	return common.UserIDPrefix + uuid.NewString()
}

// NewStorageKey returns a random object key for an uploaded attachment.
func NewStorageKey(name string) string {
	return uuid.NewString() + "/" + name
}
