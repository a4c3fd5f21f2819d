package textgen

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"promptserver/internal/domain"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func geminiCompletion(text string) *http.Response {
	body := `{"candidates":[{"content":{"role":"model","parts":[{"text":` + jsonString(text) + `}]}}]}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func jsonString(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + replacer.Replace(s) + `"`
}

func TestNewGeminiParserRequiresKey(t *testing.T) {
	if _, err := NewGeminiParser(GeminiOptions{}); err == nil {
		t.Fatal("expected error for missing api key")
	}
}

func TestGeminiParseVideoPrompt(t *testing.T) {
	var gotPath, gotKey string
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.Path
		gotKey = req.Header.Get("x-goog-api-key")
		return geminiCompletion(`{"subject":"a cat","action":"napping","duration":6}`), nil
	})}
	parser, err := NewGeminiParser(GeminiOptions{APIKey: "test-key", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiParser: %v", err)
	}
	got, err := parser.ParseVideoPrompt(context.Background(), "a cat napping")
	if err != nil {
		t.Fatalf("ParseVideoPrompt: %v", err)
	}
	if got.Provider != GeminiProviderName {
		t.Fatalf("Provider = %q, want %q", got.Provider, GeminiProviderName)
	}
	if got.Params.Subject != "a cat" || got.Params.Action != "napping" {
		t.Fatalf("params = %+v", got.Params)
	}
	if got.Params.Duration != 6 {
		t.Fatalf("Duration = %d, want 6", got.Params.Duration)
	}
	if got.Params.Scene != domain.DefaultScene {
		t.Fatalf("Scene = %q, want default %q", got.Params.Scene, domain.DefaultScene)
	}
	if !strings.HasSuffix(gotPath, "/models/gemini-1.5-flash:generateContent") {
		t.Fatalf("request path = %q", gotPath)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
}

func TestGeminiParseVideoPromptFallsBackOnTransportError(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	parser, err := NewGeminiParser(GeminiOptions{APIKey: "test-key", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiParser: %v", err)
	}
	got, err := parser.ParseVideoPrompt(context.Background(), "a cat napping")
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

func TestGeminiParseVideoPromptFallsBackOnBadCompletion(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return geminiCompletion("I could not extract anything useful."), nil
	})}
	parser, err := NewGeminiParser(GeminiOptions{APIKey: "test-key", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiParser: %v", err)
	}
	got, err := parser.ParseVideoPrompt(context.Background(), "a cat napping")
	if err != nil {
		t.Fatalf("ParseVideoPrompt: %v", err)
	}
	if got.Provider != StaticProviderName {
		t.Fatalf("Provider = %q, want %q", got.Provider, StaticProviderName)
	}
}

func TestGeminiEnhanceImagePrompts(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return geminiCompletion(`{"midjourney":"mj prompt","dalle3":"d3 prompt"}`), nil
	})}
	parser, err := NewGeminiParser(GeminiOptions{APIKey: "test-key", HTTPClient: client})
	if err != nil {
		t.Fatalf("NewGeminiParser: %v", err)
	}
	got, err := parser.EnhanceImagePrompts(context.Background(), "a red fox")
	if err != nil {
		t.Fatalf("EnhanceImagePrompts: %v", err)
	}
	if got.Provider != GeminiProviderName {
		t.Fatalf("Provider = %q, want %q", got.Provider, GeminiProviderName)
	}
	if got.Prompts.Midjourney != "mj prompt" {
		t.Fatalf("Midjourney = %q", got.Prompts.Midjourney)
	}
	if got.Prompts.StableDiffusion == "" {
		t.Fatal("StableDiffusion should fall back to the local renderer")
	}
}

func TestGeminiUsesConfiguredFallback(t *testing.T) {
	client := &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader(`{"error":"quota"}`)),
		}, nil
	})}
	fallback := &recordingParser{}
	parser, err := NewGeminiParser(GeminiOptions{APIKey: "test-key", HTTPClient: client, Fallback: fallback})
	if err != nil {
		t.Fatalf("NewGeminiParser: %v", err)
	}
	if _, err := parser.ParseVideoPrompt(context.Background(), "a cat"); err != nil {
		t.Fatalf("ParseVideoPrompt: %v", err)
	}
	if _, err := parser.EnhanceImagePrompts(context.Background(), "a fox"); err != nil {
		t.Fatalf("EnhanceImagePrompts: %v", err)
	}
	if fallback.videoCalls != 1 || fallback.imageCalls != 1 {
		t.Fatalf("fallback calls = %d video, %d image", fallback.videoCalls, fallback.imageCalls)
	}
}

type recordingParser struct {
	videoCalls int
	imageCalls int
}

func (r *recordingParser) ParseVideoPrompt(ctx context.Context, text string) (*VideoParseResult, error) {
	r.videoCalls++
	return &VideoParseResult{Params: domain.DefaultParams(), Provider: StaticProviderName}, nil
}

func (r *recordingParser) EnhanceImagePrompts(ctx context.Context, description string) (*ImagePromptResult, error) {
	r.imageCalls++
	return &ImagePromptResult{Provider: StaticProviderName}, nil
}
