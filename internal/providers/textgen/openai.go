package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"promptserver/internal/domain"
	"promptserver/internal/promptgen"
)

type OpenAIOptions struct {
	APIKey       string
	Model        string
	BaseURL      string
	Organization string
	HTTPClient   *http.Client
	Renderer     *promptgen.ImageRenderer
	Fallback     Parser
	OnFallback   func(reason string, err error)
}

type OpenAIParser struct {
	apiKey       string
	model        string
	baseURL      string
	organization string
	client       *http.Client
	renderer     *promptgen.ImageRenderer
	fallback     Parser
	onFallback   func(reason string, err error)
}

const openAIDefaultTimeout = 15 * time.Second

const defaultOpenAIModel = "gpt-4o-mini"

type openAIChatRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	ResponseFormat *openAIFormat   `json:"response_format,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIFormat struct {
	Type string `json:"type"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func NewOpenAIParser(opts OpenAIOptions) (*OpenAIParser, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, errors.New("openai api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = defaultOpenAIModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: openAIDefaultTimeout}
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = promptgen.NewImageRenderer(nil)
	}
	return &OpenAIParser{
		apiKey:       strings.TrimSpace(opts.APIKey),
		model:        model,
		baseURL:      baseURL,
		organization: strings.TrimSpace(opts.Organization),
		client:       client,
		renderer:     renderer,
		fallback:     opts.Fallback,
		onFallback:   opts.OnFallback,
	}, nil
}

func (o *OpenAIParser) ParseVideoPrompt(ctx context.Context, text string) (*VideoParseResult, error) {
	raw, reason, err := o.complete(ctx, videoParseInstruction, "User description: "+text, 0.3)
	if err != nil {
		return o.fallbackVideo(ctx, text, reason, err)
	}
	extraction, err := decodeExtraction(raw)
	if err != nil {
		return o.fallbackVideo(ctx, text, "parse_payload", err)
	}
	return &VideoParseResult{
		Params:   domain.Canonicalize(extraction),
		Provider: OpenAIProviderName,
	}, nil
}

func (o *OpenAIParser) EnhanceImagePrompts(ctx context.Context, description string) (*ImagePromptResult, error) {
	raw, reason, err := o.complete(ctx, imagePromptInstruction, "Image description: "+description, 0.7)
	if err != nil {
		return o.fallbackImage(ctx, description, reason, err)
	}
	payload, err := decodeImagePayload(raw)
	if err != nil {
		return o.fallbackImage(ctx, description, "parse_payload", err)
	}
	return &ImagePromptResult{
		Prompts:  mergeImagePrompts(payload, description, o.renderer),
		Provider: OpenAIProviderName,
	}, nil
}

func (o *OpenAIParser) complete(ctx context.Context, system, user string, temperature float64) (string, string, error) {
	payload := openAIChatRequest{
		Model:       o.model,
		Temperature: temperature,
		ResponseFormat: &openAIFormat{
			Type: "json_object",
		},
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", "encode_request", err
	}
	endpoint := fmt.Sprintf("%s/chat/completions", o.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", "build_request", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	if o.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", o.organization)
	}
	resp, err := o.client.Do(httpReq)
	if err != nil {
		return "", "http_request", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return "", fmt.Sprintf("http_%d", resp.StatusCode), fmt.Errorf("openai status %d", resp.StatusCode)
	}
	var out openAIChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "decode_response", err
	}
	if len(out.Choices) == 0 {
		return "", "empty_choices", errors.New("no choices")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", "empty_response", errors.New("empty response")
	}
	return text, "", nil
}

func (o *OpenAIParser) fallbackVideo(ctx context.Context, text, reason string, cause error) (*VideoParseResult, error) {
	if o.onFallback != nil {
		o.onFallback(reason, cause)
	}
	if o.fallback != nil {
		return o.fallback.ParseVideoPrompt(ctx, text)
	}
	return NewStaticParser(o.renderer).ParseVideoPrompt(ctx, text)
}

func (o *OpenAIParser) fallbackImage(ctx context.Context, description, reason string, cause error) (*ImagePromptResult, error) {
	if o.onFallback != nil {
		o.onFallback(reason, cause)
	}
	if o.fallback != nil {
		return o.fallback.EnhanceImagePrompts(ctx, description)
	}
	return NewStaticParser(o.renderer).EnhanceImagePrompts(ctx, description)
}

var _ Parser = (*OpenAIParser)(nil)
