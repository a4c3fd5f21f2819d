package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promptserver/internal/domain"
	"promptserver/internal/promptgen"
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Renderer   *promptgen.ImageRenderer
	Fallback   Parser
}

type GeminiParser struct {
	apiKey   string
	model    string
	baseURL  string
	client   *http.Client
	renderer *promptgen.ImageRenderer
	fallback Parser
}

const geminiDefaultTimeout = 15 * time.Second

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGeminiParser(opts GeminiOptions) (*GeminiParser, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = promptgen.NewImageRenderer(nil)
	}
	return &GeminiParser{
		apiKey:   opts.APIKey,
		model:    model,
		baseURL:  baseURL,
		client:   client,
		renderer: renderer,
		fallback: opts.Fallback,
	}, nil
}

func (g *GeminiParser) ParseVideoPrompt(ctx context.Context, text string) (*VideoParseResult, error) {
	raw, err := g.generate(ctx, videoParseInstruction+"\n\nUser description: "+text, 0.3)
	if err != nil {
		return g.fallbackVideo(ctx, text)
	}
	extraction, err := decodeExtraction(raw)
	if err != nil {
		return g.fallbackVideo(ctx, text)
	}
	return &VideoParseResult{
		Params:   domain.Canonicalize(extraction),
		Provider: GeminiProviderName,
	}, nil
}

func (g *GeminiParser) EnhanceImagePrompts(ctx context.Context, description string) (*ImagePromptResult, error) {
	raw, err := g.generate(ctx, imagePromptInstruction+"\n\nImage description: "+description, 0.7)
	if err != nil {
		return g.fallbackImage(ctx, description)
	}
	payload, err := decodeImagePayload(raw)
	if err != nil {
		return g.fallbackImage(ctx, description)
	}
	return &ImagePromptResult{
		Prompts:  mergeImagePrompts(payload, description, g.renderer),
		Provider: GeminiProviderName,
	}, nil
}

func (g *GeminiParser) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      temperature,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	text := extractCandidateText(out)
	if text == "" {
		return "", errors.New("gemini: empty candidate text")
	}
	return text, nil
}

func (g *GeminiParser) endpoint() string {
	model := url.PathEscape(g.model)
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, model)
}

func extractCandidateText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

func (g *GeminiParser) fallbackVideo(ctx context.Context, text string) (*VideoParseResult, error) {
	if g.fallback != nil {
		return g.fallback.ParseVideoPrompt(ctx, text)
	}
	return NewStaticParser(g.renderer).ParseVideoPrompt(ctx, text)
}

func (g *GeminiParser) fallbackImage(ctx context.Context, description string) (*ImagePromptResult, error) {
	if g.fallback != nil {
		return g.fallback.EnhanceImagePrompts(ctx, description)
	}
	return NewStaticParser(g.renderer).EnhanceImagePrompts(ctx, description)
}

var _ Parser = (*GeminiParser)(nil)
