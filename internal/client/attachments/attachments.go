// Package attachments inspects and stores the optional PDF a registrant
// uploads with the form.
package attachments

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/common"
)

// Store keeps attachment content somewhere outside the record collection.
type Store interface {
	// Put uploads the file at a.Path and returns the key it is stored under.
	Put(ctx context.Context, a *models.Attachment) (string, error)
	// Locate returns a path or URL the stored content can be fetched from.
	Locate(ctx context.Context, storageKey string) (string, error)
}

// Inspect builds an Attachment for the local file at path. The content type
// is sniffed from the first 512 bytes.
func Inspect(path string) (*models.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat attachment: %w", err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("attachment %s is a directory", path)
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read attachment: %w", err)
	}

	return &models.Attachment{
		Name:        filepath.Base(path),
		ContentType: contentType(head[:n]),
		Size:        fi.Size(),
		Path:        path,
	}, nil
}

// contentType strips parameters from http.DetectContentType so the result
// compares cleanly against "application/pdf".
func contentType(head []byte) string {
	ct, _, _ := strings.Cut(http.DetectContentType(head), ";")
	return ct
}

// NopStore keeps attachment metadata only; content is not copied anywhere.
type NopStore struct{}

func (NopStore) Put(context.Context, *models.Attachment) (string, error) { return "", nil }

func (NopStore) Locate(context.Context, string) (string, error) { return "", nil }

// Open returns the Store selected by cfg.AttachmentBackend.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.AttachmentBackend {
	case "", config.AttachmentsNone:
		return NopStore{}, nil
	case config.AttachmentsLocal:
		return NewLocalStore(cfg.AttachmentDir)
	case config.AttachmentsS3:
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("attachment backend %q: %w", cfg.AttachmentBackend, common.ErrUnsupportedBackend)
	}
}
