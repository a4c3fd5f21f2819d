package textgen

import (
	"context"
	"testing"

	"promptserver/internal/domain"
)

func TestStaticParserParseVideoPrompt(t *testing.T) {
	parser := NewStaticParser(nil)
	got, err := parser.ParseVideoPrompt(context.Background(), "anything at all")
	if err != nil {
		t.Fatalf("ParseVideoPrompt: %v", err)
	}
	if got.Provider != StaticProviderName {
		t.Fatalf("Provider = %q, want %q", got.Provider, StaticProviderName)
	}
	if got.Params != domain.DefaultParams() {
		t.Fatalf("params = %+v, want defaults", got.Params)
	}
}

func TestStaticParserEnhanceImagePrompts(t *testing.T) {
	parser := NewStaticParser(nil)
	got, err := parser.EnhanceImagePrompts(context.Background(), "a red fox in snow")
	if err != nil {
		t.Fatalf("EnhanceImagePrompts: %v", err)
	}
	if got.Provider != StaticProviderName {
		t.Fatalf("Provider = %q, want %q", got.Provider, StaticProviderName)
	}
	prompts := got.Prompts
	for name, p := range map[string]string{
		"midjourney":      prompts.Midjourney,
		"stableDiffusion": prompts.StableDiffusion,
		"dalle3":          prompts.Dalle3,
		"ideogram":        prompts.Ideogram,
		"nanoBanana":      prompts.NanoBanana,
	} {
		if p == "" {
			t.Fatalf("%s prompt is empty", name)
		}
	}
}
