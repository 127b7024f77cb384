package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/radian/internal/client/address"
	"github.com/dmitrijs2005/radian/internal/client/attachments"
	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/validation"
	"github.com/dmitrijs2005/radian/internal/cryptox"
	"github.com/dmitrijs2005/radian/internal/logging"
)

// RecordStore is the part of records.Store the services use.
type RecordStore interface {
	Load(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	Upsert(ctx context.Context, u models.User) error
	RemoveByIDs(ctx context.Context, ids []string) error
	Reset(ctx context.Context, snapshot map[string]models.User) error
}

type RegistrationService interface {
	// ValidateField is the blur check: field plus the fields coupled to it.
	ValidateField(ctx context.Context, field models.Field, form *models.Form) []validation.Result
	// Submit validates the whole form and, when valid, stores a new user.
	// An invalid form yields a *validation.Error and nothing is written.
	Submit(ctx context.Context, form *models.Form) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (models.User, error)
	// AttachmentLocation returns where the user's stored attachment can be
	// fetched, or "" when there is none.
	AttachmentLocation(ctx context.Context, u models.User) (string, error)
}

type HashOptions struct {
	Cost    int
	Timeout time.Duration
}

type registrationService struct {
	store     RecordStore
	validator *validation.Validator
	files     attachments.Store
	resolver  address.Resolver
	hash      HashOptions
	log       logging.Logger

	newID        func() string
	hashPassword func(ctx context.Context, password string, cost int) (string, error)
}

func NewRegistrationService(
	store RecordStore,
	validator *validation.Validator,
	files attachments.Store,
	resolver address.Resolver,
	hash HashOptions,
	log logging.Logger,
) RegistrationService {
	if files == nil {
		files = attachments.NopStore{}
	}
	if resolver == nil {
		resolver = address.Normalizer{}
	}
	return &registrationService{
		store:        store,
		validator:    validator,
		files:        files,
		resolver:     resolver,
		hash:         hash,
		log:          log.With("module", "registration"),
		newID:        cryptox.NewUserID,
		hashPassword: cryptox.HashPassword,
	}
}

func (s *registrationService) ValidateField(ctx context.Context, field models.Field, form *models.Form) []validation.Result {
	return s.validator.ValidateWithDependents(ctx, field, form)
}

func (s *registrationService) Submit(ctx context.Context, form *models.Form) (models.User, error) {
	report := s.validator.ValidateAll(ctx, form)
	if !report.Valid() {
		s.log.Debug(ctx, "registration rejected", "first", report.First, "errors", len(report.Errors))
		return models.User{}, &validation.Error{Report: report}
	}

	hashCtx := ctx
	if s.hash.Timeout > 0 {
		var cancel context.CancelFunc
		hashCtx, cancel = context.WithTimeout(ctx, s.hash.Timeout)
		defer cancel()
	}
	hash, err := s.hashPassword(hashCtx, form.Password, s.hash.Cost)
	if err != nil {
		return models.User{}, err
	}

	u := form.ToUser(s.newID(), hash)

	addr, err := s.resolver.Resolve(ctx, form.Address)
	if err != nil {
		s.log.Warn(ctx, "address lookup failed, keeping input", "error", err)
	} else if addr != "" {
		u.Address = addr
	}

	if form.File != nil && u.File != nil {
		key, err := s.files.Put(ctx, form.File)
		if err != nil {
			return models.User{}, err
		}
		u.File.StorageKey = key
	}

	if err := s.store.Upsert(ctx, u); err != nil {
		if u.File != nil && u.File.StorageKey != "" {
			s.log.Warn(ctx, "attachment stored but user not saved", "id", u.ID, "storageKey", u.File.StorageKey, "error", err)
		}
		return models.User{}, fmt.Errorf("register user: %w", err)
	}
	s.log.Info(ctx, "user registered", "id", u.ID)
	return u, nil
}

func (s *registrationService) List(ctx context.Context) ([]models.User, error) {
	return s.store.Load(ctx)
}

func (s *registrationService) Get(ctx context.Context, id string) (models.User, error) {
	return s.store.Get(ctx, id)
}

func (s *registrationService) AttachmentLocation(ctx context.Context, u models.User) (string, error) {
	if u.File == nil || u.File.StorageKey == "" {
		return "", nil
	}
	return s.files.Locate(ctx, u.File.StorageKey)
}
