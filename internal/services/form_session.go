package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/adcraft/backend/internal/generation"
	"github.com/adcraft/backend/internal/models"
	"github.com/google/uuid"
)

// FailureMessage is what users see for any generation failure.
const FailureMessage = "Failed to generate ad copies. Please try again."

var ErrGenerationInFlight = errors.New("a generation is already in progress")

// FormSession is the campaign form state machine of one browser session.
type FormSession struct {
	mu        sync.Mutex
	id        uuid.UUID
	status    string
	form      models.CampaignRequest
	results   []models.AdCopy
	errMsg    string
	errKind   string
	updatedAt time.Time
}

func NewFormSession(id uuid.UUID, form models.CampaignRequest, now time.Time) *FormSession {
	return &FormSession{
		id:        id,
		status:    models.SessionStatusIdle,
		form:      form,
		results:   []models.AdCopy{},
		updatedAt: now,
	}
}

func (s *FormSession) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *FormSession) snapshotLocked() models.SessionSnapshot {
	results := make([]models.AdCopy, len(s.results))
	copy(results, s.results)
	return models.SessionSnapshot{
		ID:        s.id,
		Status:    s.status,
		Form:      s.form,
		Results:   results,
		Error:     s.errMsg,
		ErrorKind: s.errKind,
		UpdatedAt: s.updatedAt,
	}
}

// UpdateForm edits fields in any state. Results and error are left as they are.
func (s *FormSession) UpdateForm(patch models.CampaignPatch, now time.Time) models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = s.form.Apply(patch)
	s.updatedAt = now
	return s.snapshotLocked()
}

// BeginSubmit enters submitting, clears the previous outcome and returns the request to send.
func (s *FormSession) BeginSubmit(now time.Time) (models.CampaignRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if snap := s.snapshotLocked(); !snap.CanSubmit() {
		if snap.IsLoading() {
			return models.CampaignRequest{}, ErrGenerationInFlight
		}
		return models.CampaignRequest{}, models.ErrProductNameRequired
	}
	if err := s.transitionLocked(models.SessionStatusSubmitting); err != nil {
		return models.CampaignRequest{}, err
	}

	s.results = []models.AdCopy{}
	s.errMsg = ""
	s.errKind = ""
	s.updatedAt = now
	return s.form, nil
}

// Complete resolves the in-flight generation: succeeded with results, or failed.
func (s *FormSession) Complete(results []models.AdCopy, genErr error, now time.Time) (models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if genErr != nil {
		if err := s.transitionLocked(models.SessionStatusFailed); err != nil {
			return s.snapshotLocked(), err
		}
		s.errMsg = FailureMessage
		s.errKind = string(generation.KindOf(genErr))
	} else {
		if err := s.transitionLocked(models.SessionStatusSucceeded); err != nil {
			return s.snapshotLocked(), err
		}
		if results == nil {
			results = []models.AdCopy{}
		}
		s.results = results
	}

	s.updatedAt = now
	return s.snapshotLocked(), nil
}

func (s *FormSession) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == models.SessionStatusSubmitting {
		return 0
	}
	return now.Sub(s.updatedAt)
}

func (s *FormSession) transitionLocked(to string) error {
	if !models.IsValidSessionTransition(s.status, to) {
		return fmt.Errorf("invalid session transition %s -> %s", s.status, to)
	}
	s.status = to
	return nil
}
