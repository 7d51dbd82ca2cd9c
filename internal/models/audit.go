package models

import (
	"time"

	"github.com/google/uuid"
)

// Generation outcomes recorded in the audit trail
const (
	GenerationOutcomeSuccess = "success"
	GenerationOutcomeFailure = "failure"
)

// GenerationAudit records one provider exchange. The campaign text itself is not stored.
type GenerationAudit struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  *uuid.UUID `json:"session_id,omitempty"` // nil for one-shot generations
	Platform   string     `json:"platform"`
	Tone       string     `json:"tone"`
	Language   string     `json:"language"`
	Model      string     `json:"model"`
	Outcome    string     `json:"outcome"`
	ErrorKind  *string    `json:"error_kind,omitempty"`
	Variations int        `json:"variations"`
	LatencyMS  int64      `json:"latency_ms"`
	CreatedAt  time.Time  `json:"created_at"`
}
