package records

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/repositories/kv"
	"github.com/dmitrijs2005/radian/internal/common"
	"github.com/dmitrijs2005/radian/internal/logging"
)

//go:embed schema.json
var schemaJSON string

var collectionSchema = jsonschema.MustCompileString("schema.json", schemaJSON)

type Store struct {
	kv  kv.Repository
	key string
	log logging.Logger
}

// NewStore returns a Store keeping the collection under key. An empty key
// selects common.DefaultStorageKey.
func NewStore(repo kv.Repository, key string, log logging.Logger) *Store {
	if key == "" {
		key = common.DefaultStorageKey
	}
	return &Store{kv: repo, key: key, log: log.With("module", "records")}
}

// Load returns every stored user ordered by id. A missing or corrupt blob
// yields an empty slice; only a failing kv read is an error.
func (s *Store) Load(ctx context.Context) ([]models.User, error) {
	users, err := s.Snapshot(ctx)
	if errors.Is(err, common.ErrCorruptBlob) {
		s.log.Warn(ctx, "record collection is corrupt, treating as empty", "key", s.key, "error", err)
		return []models.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Snapshot returns the decoded id -> user mapping as stored. Unlike Load it
// reports a corrupt blob as common.ErrCorruptBlob.
func (s *Store) Snapshot(ctx context.Context) (map[string]models.User, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return decodeUsers(raw)
}

// Get returns the user stored under id.
func (s *Store) Get(ctx context.Context, id string) (models.User, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
}

// UsernameTaken reports whether any stored user has exactly this username.
func (s *Store) UsernameTaken(ctx context.Context, username string) (bool, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// Save replaces the whole collection with users, keyed by id. A later entry
// with a repeated id wins.
func (s *Store) Save(ctx context.Context, users []models.User) error {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		if err := checkUser(u); err != nil {
			return err
		}
		m[u.ID] = u
	}
	return s.write(ctx, m)
}

// Reset overwrites the collection with snapshot verbatim. An empty snapshot
// deletes the key, leaving the store as if nothing had ever been saved.
func (s *Store) Reset(ctx context.Context, snapshot map[string]models.User) error {
	if len(snapshot) == 0 {
		if err := s.kv.Delete(ctx, s.key); err != nil {
			return fmt.Errorf("reset records: %w", err)
		}
		return nil
	}
	return s.write(ctx, snapshot)
}

// Upsert inserts u or replaces the stored user with the same id, leaving the
// rest of the collection untouched.
func (s *Store) Upsert(ctx context.Context, u models.User) error {
	if err := checkUser(u); err != nil {
		return err
	}
	encoded, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user %s: %w", u.ID, err)
	}

	err = kv.Update(ctx, s.kv, s.key, func(cur []byte) ([]byte, error) {
		m, err := decodeRaw(cur)
		if err != nil {
			return nil, err
		}
		m[u.ID] = encoded
		return json.Marshal(m)
	})
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", u.ID, err)
	}
	s.log.Debug(ctx, "user stored", "id", u.ID)
	return nil
}

// RemoveByIDs deletes the listed ids. Ids that are not stored are ignored and
// repeating the call is a no-op. Records not named are written back as stored.
func (s *Store) RemoveByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := kv.Update(ctx, s.kv, s.key, func(cur []byte) ([]byte, error) {
		m, err := decodeRaw(cur)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			delete(m, id)
		}
		return json.Marshal(m)
	})
	if err != nil {
		return fmt.Errorf("remove users: %w", err)
	}
	s.log.Info(ctx, "users removed", "count", len(ids))
	return nil
}

func (s *Store) write(ctx context.Context, m map[string]models.User) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, b); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

func checkUser(u models.User) error {
	if u.ID == "" {
		return errors.New("user without id")
	}
	if !u.Terms {
		return fmt.Errorf("user %s: %w", u.ID, common.ErrTermsNotAccepted)
	}
	return nil
}

// decodeRaw validates the blob and splits it into per-user raw messages so
// untouched records keep fields this version does not know about.
func decodeRaw(b []byte) (map[string]json.RawMessage, error) {
	if err := validateBlob(b); err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	if b == nil || isNull(b) {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptBlob, err)
	}
	if m == nil {
		m = map[string]json.RawMessage{}
	}
	for key, rec := range m {
		var head struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(rec, &head); err != nil {
			return nil, fmt.Errorf("%w: record under %q: %v", common.ErrCorruptBlob, key, err)
		}
		if err := checkKey(key, head.ID); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeUsers(b []byte) (map[string]models.User, error) {
	if err := validateBlob(b); err != nil {
		return nil, err
	}
	m := map[string]models.User{}
	if b == nil || isNull(b) {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptBlob, err)
	}
	for key, u := range m {
		if err := checkKey(key, u.ID); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// checkKey requires a record to be stored under its own id.
func checkKey(key, id string) error {
	if key != id {
		return fmt.Errorf("%w: record under %q carries id %q", common.ErrCorruptBlob, key, id)
	}
	return nil
}

// validateBlob checks b against the collection schema. nil (missing key) and
// a JSON null are accepted as an empty collection.
func validateBlob(b []byte) error {
	if b == nil || isNull(b) {
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCorruptBlob, err)
	}
	if err := collectionSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrCorruptBlob, err)
	}
	return nil
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}
