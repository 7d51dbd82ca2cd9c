package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session statuses
const (
	SessionStatusIdle       = "idle"
	SessionStatusSubmitting = "submitting"
	SessionStatusSucceeded  = "succeeded"
	SessionStatusFailed     = "failed"
)

// Valid state transitions: from -> []to
var ValidSessionTransitions = map[string][]string{
	SessionStatusIdle:       {SessionStatusSubmitting},
	SessionStatusSubmitting: {SessionStatusSucceeded, SessionStatusFailed},
	SessionStatusSucceeded:  {SessionStatusSubmitting},
	SessionStatusFailed:     {SessionStatusSubmitting},
}

func IsValidSessionTransition(from, to string) bool {
	allowed, ok := ValidSessionTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// SessionSnapshot is a read-only copy of a form session.
type SessionSnapshot struct {
	ID        uuid.UUID       `json:"id"`
	Status    string          `json:"status"`
	Form      CampaignRequest `json:"form"`
	Results   []AdCopy        `json:"results"`
	Error     string          `json:"error,omitempty"`
	ErrorKind string          `json:"error_kind,omitempty"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (s SessionSnapshot) IsLoading() bool {
	return s.Status == SessionStatusSubmitting
}

// CanSubmit mirrors the disabled state of the submit control.
func (s SessionSnapshot) CanSubmit() bool {
	return !s.IsLoading() && strings.TrimSpace(s.Form.ProductName) != ""
}
