package textgen

import (
	"context"

	"promptserver/internal/domain"
)

const (
	StaticProviderName = "static"
	GeminiProviderName = "gemini"
	OpenAIProviderName = "openai"
)

// VideoParseResult is a canonicalized parameter set plus the provider that
// produced it, so callers can tell an AI parse from the deterministic
// fallback.
type VideoParseResult struct {
	Params   domain.PromptParams
	Provider string
}

// ImagePromptResult carries the per-target image prompts plus provenance.
type ImagePromptResult struct {
	Prompts  domain.ImagePrompts
	Provider string
}

// Parser is the text-completion contract the handlers depend on. Every
// implementation is total: a failed upstream call degrades to the
// deterministic local result instead of an error.
type Parser interface {
	ParseVideoPrompt(ctx context.Context, text string) (*VideoParseResult, error)
	EnhanceImagePrompts(ctx context.Context, description string) (*ImagePromptResult, error)
}
