// Package credential decides which API key the generation gateway uses and
// remembers keys the service has rejected.
package credential

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alexanderramin/splanner/internal/db"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/repository"
)

var (
	// ErrNoCredential indicates no usable credential is configured.
	ErrNoCredential = errors.New("no usable credential")

	// ErrBlankKey indicates an attempt to select an empty API key.
	ErrBlankKey = errors.New("api key is blank")
)

// EnvKeys lists the environment variables checked for an API key, highest
// priority first.
var EnvKeys = []string{"SPLANNER_API_KEY", "GEMINI_API_KEY"}

// Manager combines the stored active credential with an environment key.
// A key the user selected wins; the environment key is the fallback.
type Manager struct {
	repo   repository.CredentialRepo
	uow    db.UnitOfWork
	getenv func(string) string

	mu         sync.Mutex
	envRevoked bool
}

// NewManager creates a Manager over the credential repository. uow scopes
// Select to one transaction.
func NewManager(repo repository.CredentialRepo, uow db.UnitOfWork) *Manager {
	return &Manager{repo: repo, uow: uow, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup. Used by tests.
func (m *Manager) WithEnv(getenv func(string) string) *Manager {
	m.getenv = getenv
	return m
}

func (m *Manager) envKey() string {
	m.mu.Lock()
	revoked := m.envRevoked
	m.mu.Unlock()
	if revoked {
		return ""
	}
	for _, name := range EnvKeys {
		if v := strings.TrimSpace(m.getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

// HasValidCredential reports whether Current would return a credential.
func (m *Manager) HasValidCredential(ctx context.Context) bool {
	_, err := m.Current(ctx)
	return err == nil
}

// Current returns the credential the next generation call should use.
func (m *Manager) Current(ctx context.Context) (domain.Credential, error) {
	c, err := m.repo.GetActive(ctx)
	switch {
	case err == nil && c.Valid:
		return *c, nil
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return domain.Credential{}, fmt.Errorf("loading credential: %w", err)
	}

	if key := m.envKey(); key != "" {
		return domain.Credential{
			ID:     "env",
			Label:  "environment",
			APIKey: key,
			Source: domain.CredentialFromEnv,
			Active: true,
			Valid:  true,
		}, nil
	}
	return domain.Credential{}, ErrNoCredential
}

// Select stores apiKey as the one active credential.
func (m *Manager) Select(ctx context.Context, apiKey, label string) (domain.Credential, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return domain.Credential{}, ErrBlankKey
	}

	c := &domain.Credential{Label: label, APIKey: apiKey, Active: true, Valid: true}
	err := m.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCredentialRepo(tx)
		if err := repo.DeactivateAll(ctx); err != nil {
			return err
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		return domain.Credential{}, fmt.Errorf("selecting credential: %w", err)
	}

	m.mu.Lock()
	m.envRevoked = false
	m.mu.Unlock()
	return *c, nil
}

// Invalidate marks the credential in use as rejected. An environment key is
// revoked for the life of the process; a stored key is marked invalid.
func (m *Manager) Invalidate(ctx context.Context) error {
	cur, err := m.Current(ctx)
	if errors.Is(err, ErrNoCredential) {
		return nil
	}
	if err != nil {
		return err
	}
	if cur.Source == domain.CredentialFromEnv {
		m.mu.Lock()
		m.envRevoked = true
		m.mu.Unlock()
		return nil
	}
	if err := m.repo.SetValid(ctx, cur.ID, false); err != nil {
		return fmt.Errorf("invalidating credential: %w", err)
	}
	return nil
}

// Clear removes every stored credential. The environment key is unaffected.
func (m *Manager) Clear(ctx context.Context) error {
	return m.repo.DeleteAll(ctx)
}
