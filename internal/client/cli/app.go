package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/radian/internal/client/address"
	"github.com/dmitrijs2005/radian/internal/client/attachments"
	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/records"
	"github.com/dmitrijs2005/radian/internal/client/services"
	"github.com/dmitrijs2005/radian/internal/client/storage"
	"github.com/dmitrijs2005/radian/internal/client/validation"
	"github.com/dmitrijs2005/radian/internal/logging"
)

type App struct {
	config       *config.Config
	registration services.RegistrationService
	triage       services.TriageService
	storage      *storage.Storage
	reader       *bufio.Reader
	out          io.Writer
	log          logging.Logger
}

// NewApp opens the configured storage and attachment backends and builds the
// services on top of them.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := storage.Open(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error opening %s storage: %w", c.StorageBackend, err)
	}

	files, err := attachments.Open(ctx, c)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("error opening %s attachment store: %w", c.AttachmentBackend, err)
	}

	store := records.NewStore(st.KV, c.StorageKey, log)
	v := validation.New(store, log)
	hash := services.HashOptions{Cost: c.BcryptCost, Timeout: c.HashTimeout}

	return &App{
		config:       c,
		registration: services.NewRegistrationService(store, v, files, address.Normalizer{}, hash, log),
		triage:       services.NewTriageService(store, log),
		storage:      st,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		log:          log.With("module", "cli"),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.log.Error(ctx, "error closing storage", "error", err)
	}
}

// reload refreshes the dashboard from the store.
func (a *App) reload(ctx context.Context) error {
	if err := a.triage.Load(ctx); err != nil {
		return fmt.Errorf("error loading users: %w", err)
	}
	return nil
}
