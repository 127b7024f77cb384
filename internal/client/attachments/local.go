package attachments

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/cryptox"
	"github.com/dmitrijs2005/radian/internal/filex"
)

// LocalStore copies attachments below a directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Put(_ context.Context, a *models.Attachment) (string, error) {
	key := cryptox.NewStorageKey(a.Name)
	if _, err := filex.CopyFile(filepath.Join(s.dir, filepath.FromSlash(key)), a.Path); err != nil {
		return "", fmt.Errorf("store attachment: %w", err)
	}
	return key, nil
}

func (s *LocalStore) Locate(_ context.Context, storageKey string) (string, error) {
	p := filepath.Join(s.dir, filepath.FromSlash(storageKey))
	if _, err := os.Stat(p); err != nil {
		return "", fmt.Errorf("locate attachment: %w", err)
	}
	return p, nil
}
