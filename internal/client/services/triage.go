package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/common"
	"github.com/dmitrijs2005/radian/internal/logging"
)

// Group is one column of the triage board.
type Group string

const (
	GroupInbox  Group = "inbox"
	GroupKeep   Group = "keep"
	GroupRemove Group = "remove"
)

// GuardMessage is shown when submit is attempted with records still in the
// inbox.
const GuardMessage = "Please assign all users to either Keep Users or Remove Users before submitting."

func ParseGroup(s string) (Group, error) {
	switch g := Group(s); g {
	case GroupInbox, GroupKeep, GroupRemove:
		return g, nil
	default:
		return "", fmt.Errorf("group %q: %w", s, common.ErrUnknownGroup)
	}
}

// Board is a copy of the current partition. Each stored user appears in
// exactly one column.
type Board struct {
	Inbox  []models.User
	Keep   []models.User
	Remove []models.User
}

// TriageService drives the dashboard. It holds the partition in memory and
// is meant for a single goroutine.
type TriageService interface {
	// Load reads the stored users into the inbox and takes the snapshot
	// Reset returns to.
	Load(ctx context.Context) error
	Board() Board
	Move(id string, to Group) error
	// AssignRemaining moves every inbox user to group.
	AssignRemaining(to Group) error
	// Submit deletes the remove column from the store and reloads. It
	// refuses with common.ErrInboxNotEmpty while the inbox has users.
	Submit(ctx context.Context) ([]string, error)
	// Reset writes the snapshot back to the store and reloads.
	Reset(ctx context.Context) error
}

type triageService struct {
	store    RecordStore
	log      logging.Logger
	columns  map[Group][]models.User
	snapshot map[string]models.User
}

func NewTriageService(store RecordStore, log logging.Logger) TriageService {
	return &triageService{
		store:    store,
		log:      log.With("module", "triage"),
		columns:  emptyColumns(),
		snapshot: map[string]models.User{},
	}
}

func emptyColumns() map[Group][]models.User {
	return map[Group][]models.User{GroupInbox: nil, GroupKeep: nil, GroupRemove: nil}
}

func (s *triageService) Load(ctx context.Context) error {
	users, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	s.columns = emptyColumns()
	s.columns[GroupInbox] = users
	s.snapshot = make(map[string]models.User, len(users))
	for _, u := range users {
		s.snapshot[u.ID] = u
	}
	return nil
}

func (s *triageService) Board() Board {
	return Board{
		Inbox:  append([]models.User(nil), s.columns[GroupInbox]...),
		Keep:   append([]models.User(nil), s.columns[GroupKeep]...),
		Remove: append([]models.User(nil), s.columns[GroupRemove]...),
	}
}

func (s *triageService) Move(id string, to Group) error {
	if _, err := ParseGroup(string(to)); err != nil {
		return err
	}
	for g, users := range s.columns {
		for i, u := range users {
			if u.ID != id {
				continue
			}
			s.columns[g] = append(users[:i:i], users[i+1:]...)
			s.columns[to] = append(s.columns[to], u)
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", id, common.ErrorNotFound)
}

func (s *triageService) AssignRemaining(to Group) error {
	if to != GroupKeep && to != GroupRemove {
		return fmt.Errorf("assign remaining to %q: %w", to, common.ErrUnknownGroup)
	}
	s.columns[to] = append(s.columns[to], s.columns[GroupInbox]...)
	s.columns[GroupInbox] = nil
	return nil
}

func (s *triageService) Submit(ctx context.Context) ([]string, error) {
	if n := len(s.columns[GroupInbox]); n > 0 {
		return nil, fmt.Errorf("%d users unassigned: %w", n, common.ErrInboxNotEmpty)
	}

	ids := make([]string, 0, len(s.columns[GroupRemove]))
	for _, u := range s.columns[GroupRemove] {
		ids = append(ids, u.ID)
	}
	if err := s.store.RemoveByIDs(ctx, ids); err != nil {
		return nil, fmt.Errorf("submit board: %w", err)
	}
	s.log.Info(ctx, "board submitted", "removed", len(ids), "kept", len(s.columns[GroupKeep]))

	return ids, s.Load(ctx)
}

func (s *triageService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx, s.snapshot); err != nil {
		return fmt.Errorf("reset board: %w", err)
	}
	s.log.Info(ctx, "board reset", "users", len(s.snapshot))
	return s.Load(ctx)
}
