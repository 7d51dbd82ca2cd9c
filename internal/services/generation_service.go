package services

import (
	"context"
	"time"

	"github.com/adcraft/backend/internal/generation"
	"github.com/adcraft/backend/internal/metrics"
	"github.com/adcraft/backend/internal/models"
	"github.com/adcraft/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdCopyGenerator interface {
	Generate(ctx context.Context, req models.CampaignRequest) ([]models.AdCopy, error)
}

type AuditStore interface {
	Log(ctx context.Context, entry *models.GenerationAudit) error
	Summary(ctx context.Context, since time.Time) ([]repositories.OutcomeCount, error)
	List(ctx context.Context, f repositories.AuditFilter) ([]models.GenerationAudit, error)
}

// auditInvalidValue replaces enum values that failed validation in audit rows.
const auditInvalidValue = "invalid"

// GenerationService runs one generation and records its metrics and audit row.
type GenerationService struct {
	client AdCopyGenerator
	audit  AuditStore
	model  string
	log    *zap.Logger
}

func NewGenerationService(client AdCopyGenerator, audit AuditStore, model string, log *zap.Logger) *GenerationService {
	return &GenerationService{
		client: client,
		audit:  audit,
		model:  model,
		log:    log,
	}
}

// Generate passes the client's result through untouched. sessionID is nil for one-shot calls.
func (s *GenerationService) Generate(ctx context.Context, sessionID *uuid.UUID, req models.CampaignRequest) ([]models.AdCopy, error) {
	start := time.Now()
	copies, err := s.client.Generate(ctx, req)
	elapsed := time.Since(start)

	entry := &models.GenerationAudit{
		SessionID:  sessionID,
		Platform:   auditEnum(req.Platform.IsValid(), string(req.Platform)),
		Tone:       auditEnum(req.Tone.IsValid(), string(req.Tone)),
		Language:   auditEnum(req.Language.IsValid(), string(req.Language)),
		Model:      s.model,
		Outcome:    models.GenerationOutcomeSuccess,
		Variations: len(copies),
		LatencyMS:  elapsed.Milliseconds(),
	}
	label := models.GenerationOutcomeSuccess
	if err != nil {
		kind := string(generation.KindOf(err))
		entry.Outcome = models.GenerationOutcomeFailure
		entry.ErrorKind = &kind
		label = kind
	}

	metrics.RecordGeneration(label, entry.Platform, len(copies), elapsed.Seconds())
	s.record(entry)

	return copies, err
}

func (s *GenerationService) Summary(ctx context.Context, since time.Time) ([]repositories.OutcomeCount, error) {
	return s.audit.Summary(ctx, since)
}

// Recent lists the latest audit rows, newest first.
func (s *GenerationService) Recent(ctx context.Context, outcome *string, limit int) ([]models.GenerationAudit, error) {
	entries, err := s.audit.List(ctx, repositories.AuditFilter{Outcome: outcome, Limit: limit})
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.GenerationAudit{}
	}
	return entries, nil
}

func auditEnum(valid bool, value string) string {
	if !valid {
		return auditInvalidValue
	}
	return value
}

func (s *GenerationService) record(entry *models.GenerationAudit) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := s.audit.Log(ctx, entry); err != nil {
		s.log.Warn("failed to write generation audit", zap.String("outcome", entry.Outcome), zap.Error(err))
	}
}
