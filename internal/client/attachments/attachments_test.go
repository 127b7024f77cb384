package attachments

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/common"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestInspect_PDF(t *testing.T) {
	p := writeFile(t, "cv.pdf", "%PDF-1.7\n1 0 obj\n")

	a, err := Inspect(p)
	require.NoError(t, err)
	require.Equal(t, "cv.pdf", a.Name)
	require.Equal(t, "application/pdf", a.ContentType)
	require.EqualValues(t, len("%PDF-1.7\n1 0 obj\n"), a.Size)
	require.Equal(t, p, a.Path)
}

func TestInspect_RenamedTextIsNotPDF(t *testing.T) {
	p := writeFile(t, "notes.pdf", "just some words")

	a, err := Inspect(p)
	require.NoError(t, err)
	require.Equal(t, "text/plain", a.ContentType)
}

func TestInspect_Errors(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.pdf"))
	require.ErrorContains(t, err, "open attachment")

	_, err = Inspect(t.TempDir())
	require.ErrorContains(t, err, "is a directory")
}

func TestLocalStore_PutAndLocate(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocalStore(filepath.Join(t.TempDir(), "files"))
	require.NoError(t, err)

	src := writeFile(t, "cv.pdf", "%PDF-1.4")
	a, err := Inspect(src)
	require.NoError(t, err)

	key, err := store.Put(ctx, a)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(key, "/cv.pdf"))

	p, err := store.Locate(ctx, key)
	require.NoError(t, err)
	got, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.4", string(got))

	_, err = store.Locate(ctx, "nope/cv.pdf")
	require.Error(t, err)
}

func TestLocalStore_PutMissingSource(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Put(context.Background(), &models.Attachment{Name: "x.pdf", Path: "/definitely/not/here.pdf"})
	require.ErrorContains(t, err, "store attachment")
}

func TestNopStore(t *testing.T) {
	key, err := NopStore{}.Put(context.Background(), &models.Attachment{Name: "x.pdf"})
	require.NoError(t, err)
	require.Empty(t, key)
}

func TestOpen_Backends(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, &config.Config{AttachmentBackend: config.AttachmentsNone})
	require.NoError(t, err)
	require.IsType(t, NopStore{}, s)

	s, err = Open(ctx, &config.Config{AttachmentBackend: config.AttachmentsLocal, AttachmentDir: t.TempDir()})
	require.NoError(t, err)
	require.IsType(t, &LocalStore{}, s)

	_, err = Open(ctx, &config.Config{AttachmentBackend: "ftp"})
	require.ErrorIs(t, err, common.ErrUnsupportedBackend)
}
