package credential

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/repository"
	"github.com/alexanderramin/splanner/internal/testutil"
)

func noEnv(string) string { return "" }

func envWith(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func newTestManager(t *testing.T, getenv func(string) string) *Manager {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewManager(repository.NewSQLiteCredentialRepo(database), testutil.NewTestUoW(database)).WithEnv(getenv)
}

func TestManager_NoCredential(t *testing.T) {
	m := newTestManager(t, noEnv)

	assert.False(t, m.HasValidCredential(context.Background()))
	_, err := m.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestManager_SelectMakesCredentialAvailable(t *testing.T) {
	m := newTestManager(t, noEnv)
	ctx := context.Background()

	_, err := m.Select(ctx, "  key-1  ", "cá nhân")
	require.NoError(t, err)

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "key-1", cur.APIKey)
	assert.Equal(t, domain.CredentialFromStored, cur.Source)
	assert.True(t, m.HasValidCredential(ctx))
}

func TestManager_SelectReplacesPreviousKey(t *testing.T) {
	m := newTestManager(t, noEnv)
	ctx := context.Background()

	_, err := m.Select(ctx, "old", "")
	require.NoError(t, err)
	_, err = m.Select(ctx, "new", "")
	require.NoError(t, err)

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", cur.APIKey)
}

func TestManager_SelectBlankKey(t *testing.T) {
	m := newTestManager(t, noEnv)

	_, err := m.Select(context.Background(), "   ", "")
	assert.ErrorIs(t, err, ErrBlankKey)
}

func TestManager_SelectRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteCredentialRepo(database)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &domain.Credential{APIKey: "kept", Active: true, Valid: true}))

	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errors.New("disk full")}
	m := NewManager(repo, uow).WithEnv(noEnv)

	_, err := m.Select(ctx, "new", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "kept", cur.APIKey, "deactivation must roll back with the failed insert")
}

func TestManager_EnvKeyIsFallback(t *testing.T) {
	m := newTestManager(t, envWith(map[string]string{"GEMINI_API_KEY": "from-env"}))
	ctx := context.Background()

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cur.APIKey)
	assert.Equal(t, domain.CredentialFromEnv, cur.Source)

	_, err = m.Select(ctx, "stored", "")
	require.NoError(t, err)

	cur, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored", cur.APIKey, "a selected key wins over the environment")
}

func TestManager_SplannerEnvKeyWins(t *testing.T) {
	m := newTestManager(t, envWith(map[string]string{"GEMINI_API_KEY": "gemini", "SPLANNER_API_KEY": "splanner"}))

	cur, err := m.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "splanner", cur.APIKey)
}

func TestManager_InvalidateEnvKey(t *testing.T) {
	m := newTestManager(t, envWith(map[string]string{"GEMINI_API_KEY": "from-env"}))
	ctx := context.Background()

	require.NoError(t, m.Invalidate(ctx))
	assert.False(t, m.HasValidCredential(ctx))

	_, err := m.Select(ctx, "stored", "")
	require.NoError(t, err)

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stored", cur.APIKey)
}

func TestManager_InvalidStoredKeyFallsBackToEnv(t *testing.T) {
	m := newTestManager(t, envWith(map[string]string{"GEMINI_API_KEY": "from-env"}))
	ctx := context.Background()
	_, err := m.Select(ctx, "stored", "")
	require.NoError(t, err)

	require.NoError(t, m.Invalidate(ctx))

	cur, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cur.APIKey)
}

func TestManager_InvalidateStoredKey(t *testing.T) {
	m := newTestManager(t, noEnv)
	ctx := context.Background()
	_, err := m.Select(ctx, "stored", "")
	require.NoError(t, err)

	require.NoError(t, m.Invalidate(ctx))

	assert.False(t, m.HasValidCredential(ctx))
	_, err = m.Current(ctx)
	assert.ErrorIs(t, err, ErrNoCredential)
}

func TestManager_InvalidateWithoutCredentialIsNoop(t *testing.T) {
	m := newTestManager(t, noEnv)
	assert.NoError(t, m.Invalidate(context.Background()))
}

func TestManager_Clear(t *testing.T) {
	m := newTestManager(t, noEnv)
	ctx := context.Background()
	_, err := m.Select(ctx, "stored", "")
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx))

	assert.False(t, m.HasValidCredential(ctx))
}
