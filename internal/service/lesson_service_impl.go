package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/splanner/internal/content"
	"github.com/alexanderramin/splanner/internal/credential"
	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/generation"
	"github.com/alexanderramin/splanner/internal/repository"
	"github.com/alexanderramin/splanner/internal/store"
)

var (
	// ErrGenerationInProgress rejects a generation request while another one
	// is outstanding.
	ErrGenerationInProgress = errors.New("a generation request is already in progress")

	// ErrEmptyTopic rejects a generation request without a topic.
	ErrEmptyTopic = errors.New("lesson topic is required")
)

type lessonService struct {
	store    *store.Store
	gateway  generation.Gateway
	creds    CredentialProvider
	log      repository.GenerationLogRepo
	observer UseCaseObserver

	editMu   sync.Mutex
	inFlight atomic.Bool
}

// NewLessonService creates a LessonService over st. log may be nil, in which
// case generation attempts are not recorded.
func NewLessonService(
	st *store.Store,
	gateway generation.Gateway,
	creds CredentialProvider,
	log repository.GenerationLogRepo,
	observers ...UseCaseObserver,
) LessonService {
	return &lessonService{
		store:    st,
		gateway:  gateway,
		creds:    creds,
		log:      log,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *lessonService) Lesson() domain.LessonPlan {
	return s.store.Current()
}

func (s *lessonService) Revision() uint64 {
	return s.store.Revision()
}

func (s *lessonService) Subscribe(fn func(domain.LessonPlan)) {
	s.store.Subscribe(fn)
}

func (s *lessonService) Update(plan domain.LessonPlan) error {
	s.editMu.Lock()
	defer s.editMu.Unlock()
	return s.store.Update(plan)
}

func (s *lessonService) Edit(fn func(domain.LessonPlan) (domain.LessonPlan, error)) error {
	s.editMu.Lock()
	defer s.editMu.Unlock()

	next, err := fn(s.store.Current())
	if err != nil {
		return err
	}
	return s.store.Update(next)
}

func (s *lessonService) AddFormationActivity() (domain.Activity, error) {
	id := "form-" + uuid.New().String()
	var added domain.Activity
	err := s.Edit(func(p domain.LessonPlan) (domain.LessonPlan, error) {
		next := domain.AddFormationActivity(p, id)
		added = next.Activities.KnowledgeFormation[len(next.Activities.KnowledgeFormation)-1]
		return next, nil
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("adding formation activity: %w", err)
	}
	return added, nil
}

func (s *lessonService) RemoveFormationActivity(id string) error {
	return s.Edit(func(p domain.LessonPlan) (domain.LessonPlan, error) {
		return domain.RemoveFormationActivity(p, id)
	})
}

func (s *lessonService) Generating() bool {
	return s.inFlight.Load()
}

func (s *lessonService) NeedsCredential() bool {
	return s.gateway.NeedsCredential()
}

func (s *lessonService) Generate(ctx context.Context, topic string) (*GenerateOutcome, error) {
	cur := s.store.Current()
	return s.GenerateFor(ctx, topic, cur.Grade, cur.Subject)
}

func (s *lessonService) GenerateFor(ctx context.Context, topic, grade, subject string) (out *GenerateOutcome, err error) {
	start := time.Now()
	topic = strings.TrimSpace(topic)
	fields := map[string]any{"topic": topic, "grade": grade, "subject": subject}
	defer func() { observe(ctx, s.observer, "lesson.generate", start, err, fields) }()

	if topic == "" {
		return nil, ErrEmptyTopic
	}

	rec := &domain.GenerationRecord{Topic: topic, Grade: grade, Subject: subject, Model: s.gateway.Model()}

	if !s.inFlight.CompareAndSwap(false, true) {
		rec.Status = domain.GenerationRejected
		s.record(ctx, rec)
		return nil, ErrGenerationInProgress
	}
	defer s.inFlight.Store(false)

	cred := domain.Credential{Source: domain.CredentialNone}
	if s.gateway.NeedsCredential() {
		cred, err = s.creds.Current(ctx)
		if err != nil {
			if errors.Is(err, credential.ErrNoCredential) {
				err = fmt.Errorf("%w: %w", generation.ErrCredentialUnavailable, err)
			}
			s.recordFailure(ctx, rec, err, start)
			return nil, err
		}
	}
	fields["credential_source"] = string(cred.Source)

	res, err := s.gateway.Generate(ctx, cred, generation.Request{Topic: topic, Grade: grade, Subject: subject})
	if err != nil {
		if cred.Source != domain.CredentialNone && errors.Is(err, generation.ErrCredentialUnavailable) {
			if invErr := s.creds.Invalidate(ctx); invErr != nil {
				fields["invalidate_error"] = invErr.Error()
			}
		}
		s.recordFailure(ctx, rec, err, start)
		return nil, err
	}

	var merged domain.LessonPlan
	err = s.Edit(func(p domain.LessonPlan) (domain.LessonPlan, error) {
		merged = content.MergeGenerated(p, res.Content, topic, grade, subject)
		return merged, nil
	})
	if err != nil {
		err = fmt.Errorf("applying generated content: %w", err)
		s.recordFailure(ctx, rec, err, start)
		return nil, err
	}

	rec.Model = res.Model
	rec.Status = domain.GenerationOK
	rec.LatencyMs = time.Since(start).Milliseconds()
	s.record(ctx, rec)
	fields["model"] = res.Model
	fields["formation_count"] = len(merged.Activities.KnowledgeFormation)

	return &GenerateOutcome{Plan: s.store.Current(), Model: res.Model, LatencyMs: res.LatencyMs}, nil
}

func (s *lessonService) recordFailure(ctx context.Context, rec *domain.GenerationRecord, err error, start time.Time) {
	switch {
	case errors.Is(err, generation.ErrCredentialUnavailable):
		rec.Status = domain.GenerationCredentialUnavailable
	case errors.Is(err, generation.ErrEmptyResponse):
		rec.Status = domain.GenerationEmptyResponse
	default:
		rec.Status = domain.GenerationFailed
	}
	rec.ErrorCode = generation.ErrorCode(err)
	rec.LatencyMs = time.Since(start).Milliseconds()
	s.record(ctx, rec)
}

// record appends to the generation log. A logging failure never fails the
// generation; it is reported to the observer instead.
func (s *lessonService) record(ctx context.Context, rec *domain.GenerationRecord) {
	if s.log == nil {
		return
	}
	start := time.Now()
	if err := s.log.Record(context.WithoutCancel(ctx), rec); err != nil {
		observe(ctx, s.observer, "generation_log.record", start, err, map[string]any{"status": string(rec.Status)})
	}
}
