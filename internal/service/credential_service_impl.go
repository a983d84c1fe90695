package service

import (
	"context"
	"time"

	"github.com/alexanderramin/splanner/internal/domain"
	"github.com/alexanderramin/splanner/internal/repository"
)

type credentialService struct {
	creds    CredentialProvider
	observer UseCaseObserver
}

func NewCredentialService(creds CredentialProvider, observers ...UseCaseObserver) CredentialService {
	return &credentialService{creds: creds, observer: useCaseObserverOrNoop(observers)}
}

func (s *credentialService) HasCredential(ctx context.Context) bool {
	return s.creds.HasValidCredential(ctx)
}

func (s *credentialService) Current(ctx context.Context) (domain.Credential, error) {
	return s.creds.Current(ctx)
}

func (s *credentialService) Select(ctx context.Context, apiKey, label string) (c domain.Credential, err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "credential.select", start, err, map[string]any{"label": label}) }()
	return s.creds.Select(ctx, apiKey, label)
}

func (s *credentialService) Clear(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { observe(ctx, s.observer, "credential.clear", start, err, nil) }()
	return s.creds.Clear(ctx)
}

type historyService struct {
	log repository.GenerationLogRepo
}

func NewHistoryService(log repository.GenerationLogRepo) HistoryService {
	return &historyService{log: log}
}

func (s *historyService) Recent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error) {
	return s.log.ListRecent(ctx, limit)
}
