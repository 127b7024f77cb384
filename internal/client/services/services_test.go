package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/records"
	"github.com/dmitrijs2005/radian/internal/client/repositories/kv"
	"github.com/dmitrijs2005/radian/internal/logging"
)

var fixedNow = time.Date(2026, time.June, 15, 9, 0, 0, 0, time.UTC)

func newRecords() (*records.Store, *kv.MemoryRepository) {
	repo := kv.NewMemoryRepository()
	return records.NewStore(repo, "radian", logging.NewNop()), repo
}

func stored(id, username string) models.User {
	return models.User{
		ID:                  id,
		FirstName:           "Stored",
		LastName:            "User",
		Username:            username,
		Email:               username + "@example.com",
		Password:            "$2a$10$abcdefghijklmnopqrstuv",
		PhoneCode:           "+1",
		Phone:               "555-123-4567",
		DOB:                 "1980-01-01",
		Address:             "2 Side St",
		Department:          "Sales",
		LocationPreferences: []string{"Minnesota"},
		Plan:                "Low",
		PaymentCycle:        "Annual",
		Terms:               true,
	}
}

// fakeStore wraps a real store and lets tests inject failures.
type fakeStore struct {
	RecordStore
	LoadErr   error
	UpsertErr error
	RemoveErr error
	ResetErr  error
	removed   [][]string
}

func (f *fakeStore) Load(ctx context.Context) ([]models.User, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	return f.RecordStore.Load(ctx)
}

func (f *fakeStore) Upsert(ctx context.Context, u models.User) error {
	if f.UpsertErr != nil {
		return f.UpsertErr
	}
	return f.RecordStore.Upsert(ctx, u)
}

func (f *fakeStore) RemoveByIDs(ctx context.Context, ids []string) error {
	f.removed = append(f.removed, ids)
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	return f.RecordStore.RemoveByIDs(ctx, ids)
}

func (f *fakeStore) Reset(ctx context.Context, snap map[string]models.User) error {
	if f.ResetErr != nil {
		return f.ResetErr
	}
	return f.RecordStore.Reset(ctx, snap)
}
