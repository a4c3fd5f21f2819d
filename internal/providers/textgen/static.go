package textgen

import (
	"context"

	"promptserver/internal/domain"
	"promptserver/internal/promptgen"
)

// StaticParser is the deterministic tail of every fallback chain. It never
// calls out: video parses collapse to the canonical default table and image
// prompts come from the local renderer.
type StaticParser struct {
	renderer *promptgen.ImageRenderer
}

func NewStaticParser(renderer *promptgen.ImageRenderer) *StaticParser {
	if renderer == nil {
		renderer = promptgen.NewImageRenderer(nil)
	}
	return &StaticParser{renderer: renderer}
}

func (s *StaticParser) ParseVideoPrompt(ctx context.Context, text string) (*VideoParseResult, error) {
	return &VideoParseResult{
		Params:   domain.DefaultParams(),
		Provider: StaticProviderName,
	}, nil
}

func (s *StaticParser) EnhanceImagePrompts(ctx context.Context, description string) (*ImagePromptResult, error) {
	return &ImagePromptResult{
		Prompts:  s.renderer.Render(description),
		Provider: StaticProviderName,
	}, nil
}

var _ Parser = (*StaticParser)(nil)
