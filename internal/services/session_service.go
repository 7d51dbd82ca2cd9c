package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/adcraft/backend/internal/events"
	"github.com/adcraft/backend/internal/metrics"
	"github.com/adcraft/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrSessionNotFound = errors.New("session not found")

type Generator interface {
	Generate(ctx context.Context, sessionID *uuid.UUID, req models.CampaignRequest) ([]models.AdCopy, error)
}

// SessionService owns the in-memory form sessions and runs their generations.
type SessionService struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID]*FormSession
	generator Generator
	publisher events.Publisher
	ttl       time.Duration
	now       func() time.Time
	inflight  sync.WaitGroup
	log       *zap.Logger
}

func NewSessionService(generator Generator, publisher events.Publisher, ttl time.Duration, log *zap.Logger) *SessionService {
	return &SessionService{
		sessions:  make(map[uuid.UUID]*FormSession),
		generator: generator,
		publisher: publisher,
		ttl:       ttl,
		now:       time.Now,
		log:       log,
	}
}

// Create starts a session pre-filled with the default campaign.
func (s *SessionService) Create() models.SessionSnapshot {
	session := NewFormSession(uuid.New(), models.DefaultCampaignRequest(), s.now())

	s.mu.Lock()
	s.sessions[session.id] = session
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	return session.Snapshot()
}

func (s *SessionService) Get(id uuid.UUID) (models.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	return session.Snapshot(), nil
}

func (s *SessionService) UpdateForm(ctx context.Context, id uuid.UUID, patch models.CampaignPatch) (models.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	snap := session.UpdateForm(patch, s.now())
	s.publish(ctx, snap)
	return snap, nil
}

// Submit enters submitting and starts the generation in the background. The returned
// snapshot is the submitting state; the outcome arrives as an event.
func (s *SessionService) Submit(ctx context.Context, id uuid.UUID) (models.SessionSnapshot, error) {
	session, err := s.lookup(id)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	req, err := session.BeginSubmit(s.now())
	if err != nil {
		return session.Snapshot(), err
	}

	snap := session.Snapshot()
	s.publish(ctx, snap)

	s.inflight.Add(1)
	go s.run(session, req)

	return snap, nil
}

// Wait blocks until every in-flight generation has resolved.
func (s *SessionService) Wait() {
	s.inflight.Wait()
}

func (s *SessionService) run(session *FormSession, req models.CampaignRequest) {
	defer s.inflight.Done()

	// No cancellation: the call runs to completion whatever happens to the request that started it.
	ctx := context.Background()
	id := session.id

	results, genErr := s.generator.Generate(ctx, &id, req)
	if genErr != nil {
		s.log.Error("generation failed",
			zap.String("session_id", id.String()),
			zap.String("platform", string(req.Platform)),
			zap.Error(genErr),
		)
	}

	snap, err := session.Complete(results, genErr, s.now())
	if err != nil {
		s.log.Error("session transition failed", zap.String("session_id", id.String()), zap.Error(err))
		return
	}
	s.publish(ctx, snap)
}

// Sweep drops sessions idle for longer than the TTL. In-flight sessions are kept.
func (s *SessionService) Sweep(ctx context.Context) int {
	if s.ttl <= 0 {
		return 0
	}
	now := s.now()

	s.mu.Lock()
	var expired []uuid.UUID
	for id, session := range s.sessions {
		if session.idleSince(now) > s.ttl {
			expired = append(expired, id)
			delete(s.sessions, id)
		}
	}
	n := len(s.sessions)
	s.mu.Unlock()

	metrics.ActiveSessions.Set(float64(n))
	for _, id := range expired {
		s.emit(ctx, events.Event{Type: events.EventSessionExpired, SessionID: id, At: now})
	}
	if len(expired) > 0 {
		s.log.Info("expired idle sessions", zap.Int("count", len(expired)), zap.Int("remaining", n))
	}
	return len(expired)
}

// StartSweeper runs Sweep on a ticker until ctx is done.
func (s *SessionService) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

func (s *SessionService) lookup(id uuid.UUID) (*FormSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) publish(ctx context.Context, snap models.SessionSnapshot) {
	s.emit(ctx, events.Event{
		Type:      events.EventSessionStateChanged,
		SessionID: snap.ID,
		At:        snap.UpdatedAt,
		Payload:   map[string]any{"session": snap},
	})
}

func (s *SessionService) emit(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, events.StreamSessions, event); err != nil {
		s.log.Warn("failed to publish session event",
			zap.String("type", event.Type),
			zap.String("session_id", event.SessionID.String()),
			zap.Error(err),
		)
	}
}
