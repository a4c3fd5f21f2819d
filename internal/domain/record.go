package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationMode distinguishes how a record's prompts were produced.
type GenerationMode string

const (
	ModeText  GenerationMode = "text"
	ModeVideo GenerationMode = "video"
)

// GenerationRecord captures one completed video-prompt generation so clients
// can re-fetch or export it later.
type GenerationRecord struct {
	ID         string         `json:"id"`
	Mode       GenerationMode `json:"mode"`
	SourceText string         `json:"source_text,omitempty"`
	SourceURL  string         `json:"source_url,omitempty"`
	Params     PromptParams   `json:"params"`
	Outputs    ModelPrompts   `json:"outputs"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewGenerationRecord assembles a record with a fresh identifier.
func NewGenerationRecord(mode GenerationMode, params PromptParams, outputs ModelPrompts) GenerationRecord {
	return GenerationRecord{
		ID:        uuid.NewString(),
		Mode:      mode,
		Params:    params,
		Outputs:   outputs,
		CreatedAt: time.Now().UTC(),
	}
}
