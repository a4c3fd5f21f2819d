package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"promptserver/internal/domain"
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiAnalyzer calls the Gemini generateContent endpoint with an inline
// image part plus a text instruction.
type GeminiAnalyzer struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

const geminiDefaultTimeout = 30 * time.Second

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	MaxOutputTokens  int     `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type analysisPayload struct {
	Caption     string   `json:"caption"`
	Subjects    []string `json:"subjects"`
	Style       string   `json:"style"`
	Lighting    string   `json:"lighting"`
	Composition string   `json:"composition"`
	Colors      []string `json:"colors"`
	Mood        string   `json:"mood"`
	Technical   string   `json:"technical"`
}

func NewGeminiAnalyzer(opts GeminiOptions) (*GeminiAnalyzer, error) {
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
	return &GeminiAnalyzer{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

func (g *GeminiAnalyzer) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (domain.ImageAnalysis, error) {
	text, err := g.generate(ctx, analyzeInstruction, data, mimeType, true)
	if err != nil {
		return domain.ImageAnalysis{}, err
	}
	cleaned := extractJSONObject(text)
	if cleaned == "" {
		return domain.ImageAnalysis{}, errors.New("vision: no JSON object in response")
	}
	var payload analysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.ImageAnalysis{}, fmt.Errorf("vision: decode analysis: %w", err)
	}
	return domain.ImageAnalysis{
		Caption:     strings.TrimSpace(payload.Caption),
		Subjects:    payload.Subjects,
		Style:       strings.TrimSpace(payload.Style),
		Lighting:    strings.TrimSpace(payload.Lighting),
		Composition: strings.TrimSpace(payload.Composition),
		Colors:      payload.Colors,
		Mood:        strings.TrimSpace(payload.Mood),
		Technical:   strings.TrimSpace(payload.Technical),
	}, nil
}

func (g *GeminiAnalyzer) CaptionImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	text, err := g.generate(ctx, captionInstruction, data, mimeType, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (g *GeminiAnalyzer) generate(ctx context.Context, instruction string, data []byte, mimeType string, wantJSON bool) (string, error) {
	if len(data) == 0 {
		return "", errors.New("vision: empty image data")
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	cfg := &geminiGenerationConfig{
		Temperature:     0.3,
		CandidateCount:  1,
		MaxOutputTokens: 800,
	}
	if wantJSON {
		cfg.ResponseMimeType = "application/json"
	}
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{Text: instruction},
				{InlineData: &geminiInlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(data),
				}},
			},
		}},
		GenerationConfig: cfg,
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", err
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
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
		return "", fmt.Errorf("vision: unexpected status %d", resp.StatusCode)
	}
	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text, nil
			}
		}
	}
	return "", errors.New("vision: empty candidate text")
}

func extractJSONObject(raw string) string {
	text := strings.TrimSpace(raw)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	return text[start : end+1]
}

var _ Analyzer = (*GeminiAnalyzer)(nil)
