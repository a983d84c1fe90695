package service

import (
	"context"

	"github.com/alexanderramin/splanner/internal/domain"
)

// LessonService owns one editing session: the current lesson plan and the
// generation requests made against it.
type LessonService interface {
	Lesson() domain.LessonPlan
	Revision() uint64
	Update(plan domain.LessonPlan) error
	Edit(fn func(domain.LessonPlan) (domain.LessonPlan, error)) error
	AddFormationActivity() (domain.Activity, error)
	RemoveFormationActivity(id string) error
	Subscribe(fn func(domain.LessonPlan))

	// Generate fills the plan with AI content for topic, using the plan's
	// current grade and subject.
	Generate(ctx context.Context, topic string) (*GenerateOutcome, error)
	GenerateFor(ctx context.Context, topic, grade, subject string) (*GenerateOutcome, error)
	Generating() bool
	// NeedsCredential is false when the configured provider takes no API key.
	NeedsCredential() bool
}

type CredentialService interface {
	HasCredential(ctx context.Context) bool
	Current(ctx context.Context) (domain.Credential, error)
	Select(ctx context.Context, apiKey, label string) (domain.Credential, error)
	Clear(ctx context.Context) error
}

type HistoryService interface {
	Recent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error)
}

// CredentialProvider is the credential collaborator the services depend on.
type CredentialProvider interface {
	HasValidCredential(ctx context.Context) bool
	Current(ctx context.Context) (domain.Credential, error)
	Select(ctx context.Context, apiKey, label string) (domain.Credential, error)
	Invalidate(ctx context.Context) error
	Clear(ctx context.Context) error
}

// GenerateOutcome describes a successful generation.
type GenerateOutcome struct {
	Plan      domain.LessonPlan
	Model     string
	LatencyMs int64
}
