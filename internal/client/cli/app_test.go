package cli

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/dmitrijs2005/radian/internal/client/config"
	"github.com/dmitrijs2005/radian/internal/client/models"
	"github.com/dmitrijs2005/radian/internal/client/records"
	"github.com/dmitrijs2005/radian/internal/client/repositories/kv"
	"github.com/dmitrijs2005/radian/internal/client/services"
	"github.com/dmitrijs2005/radian/internal/client/validation"
	"github.com/dmitrijs2005/radian/internal/logging"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

// newTestApp builds an App over an in-memory collection. input feeds the
// interactive prompts.
func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *records.Store) {
	t.Helper()
	log := logging.NewNop()
	store := records.NewStore(kv.NewMemoryRepository(), "", log)
	v := validation.New(store, log, validation.WithClock(fixedNow))
	hash := services.HashOptions{Cost: bcrypt.MinCost, Timeout: 5 * time.Second}

	var out bytes.Buffer
	a := &App{
		config:       &config.Config{StorageBackend: config.BackendMemory},
		registration: services.NewRegistrationService(store, v, nil, nil, hash, log),
		triage:       services.NewTriageService(store, log),
		reader:       rdr(input),
		out:          &out,
		log:          log,
	}
	return a, &out, store
}

func storedUser(id, first string) models.User {
	return models.User{
		ID:                  id,
		FirstName:           first,
		LastName:            "Doe",
		Username:            first + "user01",
		Email:               first + "@example.com",
		Password:            "$2a$04$hash",
		PhoneCode:           "+1",
		Phone:               "555-123-4567",
		DOB:                 "1990-05-01",
		Address:             "1 Main St",
		Department:          "IT",
		LocationPreferences: []string{"Tennessee"},
		Plan:                "High",
		PaymentCycle:        "Monthly",
		Terms:               true,
	}
}

func seed(t *testing.T, store *records.Store, users ...models.User) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), users))
}

func TestGetStatus(t *testing.T) {
	a, _, store := newTestApp(t, "")
	seed(t, store, storedUser("user_a", "Ann"), storedUser("user_b", "Bob"))
	require.NoError(t, a.reload(context.Background()))

	require.Equal(t, "(memory inbox:2 keep:0 remove:0)", a.getStatus())

	a.config = nil
	require.Equal(t, "(inbox:2 keep:0 remove:0)", a.getStatus())
}

func TestRoot_LoadsBoardAndRunsCommands(t *testing.T) {
	capturePrintln(t)
	a, out, store := newTestApp(t, "board\nquit\n")
	seed(t, store, storedUser("user_a", "Ann"))

	a.Root(context.Background())

	require.Contains(t, out.String(), "Welcome to radian")
	require.Contains(t, out.String(), "Inbox (1)")
	require.Contains(t, out.String(), "user_a  Ann Doe  Ann@example.com")
}

func TestRun_WithoutStorageDoesNotPanic(t *testing.T) {
	capturePrintln(t)
	a, _, _ := newTestApp(t, "")
	a.Run(context.Background())
}

func TestList(t *testing.T) {
	a, out, store := newTestApp(t, "")

	require.NoError(t, a.List(context.Background()))
	require.Contains(t, out.String(), "No registered users")

	out.Reset()
	seed(t, store, storedUser("user_b", "Bob"), storedUser("user_a", "Ann"))
	require.NoError(t, a.List(context.Background()))

	got := out.String()
	require.Contains(t, got, "USERNAME")
	require.Contains(t, got, "Annuser01")
	require.Less(t, bytes.Index(out.Bytes(), []byte("user_a")), bytes.Index(out.Bytes(), []byte("user_b")))
	require.NotContains(t, got, "$2a$04$hash")
}

func TestShow(t *testing.T) {
	a, out, store := newTestApp(t, "")
	u := storedUser("user_a", "Ann")
	u.MiddleInitial = "Q"
	u.AltPhoneCode = "+44"
	u.AltPhone = "555.987.6543"
	u.File = &models.Attachment{Name: "cv.pdf", ContentType: "application/pdf", Size: 42}
	seed(t, store, u)

	require.NoError(t, a.Show(context.Background(), "user_a"))

	got := out.String()
	require.Contains(t, got, "Ann Q Doe")
	require.Contains(t, got, "+44 555.987.6543")
	require.Contains(t, got, "cv.pdf (42 bytes)")
	require.NotContains(t, got, "$2a$04$hash")
	require.NotContains(t, got, "Stored at")
}

func TestShow_UnknownID(t *testing.T) {
	a, _, _ := newTestApp(t, "")
	require.Error(t, a.Show(context.Background(), "user_missing"))
}

func TestJoinPhone(t *testing.T) {
	require.Equal(t, "", joinPhone("+1", ""))
	require.Equal(t, "+1 555-123-4567", joinPhone("+1", "555-123-4567"))
	require.Equal(t, "555-123-4567", joinPhone("", "555-123-4567"))
}

func TestClose_NilStorage(t *testing.T) {
	a := &App{log: logging.NewNop(), out: io.Discard}
	a.close(context.Background())
}
