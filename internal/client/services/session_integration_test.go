package services

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobly/internal/client/client"
	"github.com/dmitrijs2005/jobly/internal/client/flash"
	"github.com/dmitrijs2005/jobly/internal/client/models"
	"github.com/dmitrijs2005/jobly/internal/client/storage"
	"github.com/dmitrijs2005/jobly/internal/common"
	"github.com/dmitrijs2005/jobly/internal/logging"
	"github.com/dmitrijs2005/jobly/internal/testutil/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startSession wires a session the way cmd/cli does, over a store at dbPath.
func startSession(t *testing.T, baseURL, dbPath string) (SessionService, *storage.DB) {
	t.Helper()
	ctx := context.Background()
	logger := logging.NewDiscardLogger()

	db, err := storage.Open(ctx, "sqlite", dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	slot := storage.NewSlot[string](ctx, storage.NewStore(db.Metadata(), logger), common.CredentialKey)
	api := client.NewHTTPClient(baseURL, 5*time.Second, logger)
	return NewSessionService(api, slot, flash.NewQueue(), logger), db
}

func TestSession_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	backend := fakeapi.New([]byte("secret"), logging.NewDiscardLogger())
	require.NoError(t, backend.Seed())
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	dbPath := filepath.Join(t.TempDir(), "jobly.db")

	first, db := startSession(t, srv.URL, dbPath)
	require.Equal(t, StateAnonymous, first.Hydrate(ctx))
	res := first.Login(ctx, models.Credentials{Username: fakeapi.SeedUsername, Password: fakeapi.SeedPassword})
	require.True(t, res.Success, res.Errors)
	require.True(t, first.ApplyToJob(ctx, 2, "Information officer").Success)
	require.NoError(t, db.Close())

	second, _ := startSession(t, srv.URL, dbPath)
	assert.Equal(t, StateResolving, second.State())
	assert.Equal(t, StateAuthenticated, second.Hydrate(ctx))
	assert.Equal(t, fakeapi.SeedUsername, second.CurrentUser().Username)
	assert.True(t, second.HasApplied(2))

	second.Logout(ctx)

	third, _ := startSession(t, srv.URL, dbPath)
	assert.Equal(t, StateAnonymous, third.State())
}

func TestSession_ForeignTokenIsDropped(t *testing.T) {
	ctx := context.Background()
	backend := fakeapi.New([]byte("secret"), logging.NewDiscardLogger())
	require.NoError(t, backend.Seed())
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	// Decodes fine on the client, rejected by the backend.
	forged, err := fakeapi.New([]byte("other"), logging.NewDiscardLogger()).IssueToken(fakeapi.SeedUsername, false)
	require.NoError(t, err)

	dbPath := filepath.Join(t.TempDir(), "jobly.db")
	db, err := storage.Open(ctx, "sqlite", dbPath)
	require.NoError(t, err)
	storage.NewStore(db.Metadata(), logging.NewDiscardLogger()).Write(ctx, common.CredentialKey, forged)
	require.NoError(t, db.Close())

	s, db2 := startSession(t, srv.URL, dbPath)
	assert.Equal(t, StateAnonymous, s.Hydrate(ctx))

	_, err = db2.Metadata().Get(ctx, common.CredentialKey)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestSession_LoginScenarios(t *testing.T) {
	ctx := context.Background()
	backend := fakeapi.New([]byte("secret"), logging.NewDiscardLogger())
	_, err := backend.AddUser(models.SignupData{
		Username: "alice", Password: "secret", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
	}, false)
	require.NoError(t, err)
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	s, _ := startSession(t, srv.URL, filepath.Join(t.TempDir(), "jobly.db"))

	res := s.Login(ctx, models.Credentials{Username: "alice", Password: "wrong"})
	assert.Equal(t, models.Failed("invalid-username/password"), res)
	assert.Equal(t, StateAnonymous, s.State())
	assert.Empty(t, s.Snapshot().Credential)

	res = s.Login(ctx, models.Credentials{Username: "alice", Password: "secret"})
	require.Equal(t, models.Succeeded(), res)
	snap := s.Snapshot()
	assert.NotEmpty(t, snap.Credential)
	require.NotNil(t, snap.User)
	assert.Equal(t, "alice", snap.User.Username)

	require.True(t, s.UpdateProfile(ctx, models.ProfilePatch{FirstName: "Bob"}).Success)
	u := s.CurrentUser()
	assert.Equal(t, "Bob", u.FirstName)
	assert.Equal(t, "Smith", u.LastName)
	assert.Equal(t, "alice@example.com", u.Email)
}
