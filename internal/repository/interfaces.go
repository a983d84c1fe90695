package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/splanner/internal/domain"
)

// ErrNotFound is wrapped by repository lookups that match no row.
var ErrNotFound = errors.New("not found")

type CredentialRepo interface {
	Create(ctx context.Context, c *domain.Credential) error
	GetActive(ctx context.Context) (*domain.Credential, error)
	List(ctx context.Context) ([]*domain.Credential, error)
	DeactivateAll(ctx context.Context) error
	SetValid(ctx context.Context, id string, valid bool) error
	DeleteAll(ctx context.Context) error
}

type GenerationLogRepo interface {
	Record(ctx context.Context, r *domain.GenerationRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error)
}
