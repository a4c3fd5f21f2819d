package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"promptserver/internal/domain"
	"promptserver/internal/http/handlers"
	"promptserver/internal/http/httpapi"
	"promptserver/internal/infra"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/textgen"
)

type stubParser struct {
	video *textgen.VideoParseResult
	image *textgen.ImagePromptResult
}

func (s *stubParser) ParseVideoPrompt(ctx context.Context, text string) (*textgen.VideoParseResult, error) {
	if s.video != nil {
		return s.video, nil
	}
	return &textgen.VideoParseResult{Params: domain.DefaultParams(), Provider: textgen.StaticProviderName}, nil
}

func (s *stubParser) EnhanceImagePrompts(ctx context.Context, description string) (*textgen.ImagePromptResult, error) {
	if s.image != nil {
		return s.image, nil
	}
	return &textgen.ImagePromptResult{
		Prompts:  promptgen.NewImageRenderer(nil).Render(description),
		Provider: textgen.StaticProviderName,
	}, nil
}

type stubFetcher struct {
	meta *domain.VideoMetadata
	err  error
}

func (s *stubFetcher) FetchVideo(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	return s.meta, s.err
}

type stubAnalyzer struct {
	analysis domain.ImageAnalysis
	caption  string
}

func (s *stubAnalyzer) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (domain.ImageAnalysis, error) {
	return s.analysis, nil
}

func (s *stubAnalyzer) CaptionImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	return s.caption, nil
}

func imagePart(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, mw.FormDataContentType()
}

func newTestServer(t *testing.T, parser textgen.Parser, fetcher *stubFetcher) *httptest.Server {
	t.Helper()
	app := &handlers.App{
		Config: &infra.Config{
			AppEnv:          "test",
			DefaultLocale:   "zh",
			RateLimitPerMin: 1000,
		},
		Logger: zerolog.New(io.Discard),
		Parser: parser,
		Videos: fetcher,
		Images: promptgen.NewImageRenderer(nil),
	}
	srv := httptest.NewServer(httpapi.NewRouter(app, nil))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	var body map[string]string
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("status %d body %v", resp.StatusCode, body)
	}
}

func TestGenerate(t *testing.T) {
	params := domain.DefaultParams()
	params.Subject = "a cat"
	srv := newTestServer(t, &stubParser{
		video: &textgen.VideoParseResult{Params: params, Provider: textgen.GeminiProviderName},
	}, &stubFetcher{})

	resp := postJSON(t, srv.URL+"/api/generate", map[string]string{"text": "a cat napping"})
	var body struct {
		Success  bool                `json:"success"`
		ID       string              `json:"id"`
		Params   domain.PromptParams `json:"params"`
		Outputs  domain.ModelPrompts `json:"outputs"`
		Provider string              `json:"provider"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success || body.ID == "" {
		t.Fatalf("body = %+v", body)
	}
	if body.Provider != textgen.GeminiProviderName {
		t.Fatalf("Provider = %q", body.Provider)
	}
	if body.Params.Subject != "a cat" {
		t.Fatalf("Subject = %q", body.Params.Subject)
	}
	if !strings.Contains(body.Outputs.Sora2, "a cat") {
		t.Fatalf("Sora2 = %q", body.Outputs.Sora2)
	}
	if body.Outputs.Veo3 == "" || body.Outputs.Seedance2 == "" {
		t.Fatalf("outputs = %+v", body.Outputs)
	}
}

func TestGenerateRejectsEmptyText(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp := postJSON(t, srv.URL+"/api/generate", map[string]string{"text": "   "})
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body.Error != "bad_request" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestGenerateHonorsLocaleHeader(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	body, err := json.Marshal(map[string]string{"text": "a cat"})
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Locale", "en")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	var out struct {
		Outputs domain.ModelPrompts `json:"outputs"`
	}
	decodeBody(t, resp, &out)
	if strings.Contains(out.Outputs.Sora2, "中景") {
		t.Fatalf("expected english rendering, got %q", out.Outputs.Sora2)
	}
}

func TestParseVideo(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{
		meta: &domain.VideoMetadata{
			Platform:    domain.PlatformDouyin,
			VideoID:     "7312345678901234567",
			Title:       "street food tour",
			Description: "trying the best noodles in town",
			Author:      domain.VideoAuthor{Name: "Ada"},
		},
	})
	resp := postJSON(t, srv.URL+"/api/parse-video", map[string]string{"url": "https://v.douyin.com/iF8kXy2/"})
	var body struct {
		Success  bool `json:"success"`
		ID       string
		Platform struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"platform"`
		Video struct {
			Title string `json:"title"`
		} `json:"video"`
		Params  domain.PromptParams `json:"params"`
		Outputs domain.ModelPrompts `json:"outputs"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success || body.Platform.ID != "douyin" || body.Platform.Name != "抖音" {
		t.Fatalf("platform = %+v", body.Platform)
	}
	if body.Video.Title != "street food tour" {
		t.Fatalf("video = %+v", body.Video)
	}
	if body.Params.Subject == "" || body.Outputs.Sora2 == "" {
		t.Fatalf("params %+v outputs %+v", body.Params, body.Outputs)
	}
}

func TestParseVideoUnknownPlatform(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp := postJSON(t, srv.URL+"/api/parse-video", map[string]string{"url": "https://example.com/watch?v=1"})
	var body struct {
		Error              string `json:"error"`
		SupportedPlatforms []struct {
			ID string `json:"id"`
		} `json:"supportedPlatforms"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body.Error != "unsupported platform" {
		t.Fatalf("error = %q", body.Error)
	}
	if len(body.SupportedPlatforms) != 6 {
		t.Fatalf("supportedPlatforms = %d entries", len(body.SupportedPlatforms))
	}
}

func TestGenerateImageStaticNote(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp := postJSON(t, srv.URL+"/api/generate-image", map[string]string{"text": "a red fox"})
	var body struct {
		Success bool                `json:"success"`
		Prompts domain.ImagePrompts `json:"prompts"`
		Note    string              `json:"note"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success {
		t.Fatal("expected success")
	}
	if body.Note != "AI优化不可用" {
		t.Fatalf("note = %q", body.Note)
	}
	if body.Prompts.Midjourney == "" || body.Prompts.NanoBanana == "" {
		t.Fatalf("prompts = %+v", body.Prompts)
	}
}

func TestGenerateImageAIProvider(t *testing.T) {
	srv := newTestServer(t, &stubParser{
		image: &textgen.ImagePromptResult{
			Prompts:  domain.ImagePrompts{Midjourney: "mj", StableDiffusion: "sd", Dalle3: "d3", Ideogram: "ig", NanoBanana: "nb"},
			Provider: textgen.GeminiProviderName,
		},
	}, &stubFetcher{})
	resp := postJSON(t, srv.URL+"/api/generate-image", map[string]string{"text": "a red fox"})
	var body struct {
		Note    string              `json:"note"`
		Prompts domain.ImagePrompts `json:"prompts"`
	}
	decodeBody(t, resp, &body)
	if body.Note != "" {
		t.Fatalf("note = %q, want empty for AI provider", body.Note)
	}
	if body.Prompts.Midjourney != "mj" {
		t.Fatalf("prompts = %+v", body.Prompts)
	}
}

func TestAnalyzeImageRejectsNonMultipart(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp := postJSON(t, srv.URL+"/api/analyze-image", map[string]string{"image": "nope"})
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAnalyzeImageWithoutVision(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})

	buf, contentType := imagePart(t, "photo.png", "image/png", []byte("\x89PNG\r\n\x1a\nfake"))
	resp, err := http.Post(srv.URL+"/api/analyze-image", contentType, buf)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Success bool                `json:"success"`
		Prompts domain.ImagePrompts `json:"prompts"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success {
		t.Fatal("expected success")
	}
	if body.Prompts.Midjourney == "" {
		t.Fatalf("prompts = %+v", body.Prompts)
	}
	if !strings.Contains(body.Prompts.Dalle3, "highly detailed, professional quality") {
		t.Fatalf("Dalle3 = %q, want quality modifiers appended", body.Prompts.Dalle3)
	}
}

func TestAnalyzeImageEnhancesReducedDescription(t *testing.T) {
	app := &handlers.App{
		Config: &infra.Config{
			AppEnv:          "test",
			DefaultLocale:   "zh",
			RateLimitPerMin: 1000,
		},
		Logger: zerolog.New(io.Discard),
		Parser: &stubParser{},
		Videos: &stubFetcher{},
		Vision: &stubAnalyzer{analysis: domain.ImageAnalysis{Caption: "a red fox in snow"}},
		Images: promptgen.NewImageRenderer(nil),
	}
	srv := httptest.NewServer(httpapi.NewRouter(app, nil))
	t.Cleanup(srv.Close)

	buf, contentType := imagePart(t, "fox.jpg", "image/jpeg", []byte("fake-jpeg"))
	resp, err := http.Post(srv.URL+"/api/analyze-image", contentType, buf)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Analysis domain.ImageAnalysis `json:"analysis"`
		Prompts  domain.ImagePrompts  `json:"prompts"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body.Analysis.Caption != "a red fox in snow" {
		t.Fatalf("caption = %q", body.Analysis.Caption)
	}
	want := "a red fox in snow, highly detailed, professional quality"
	if !strings.Contains(body.Prompts.Dalle3, want) {
		t.Fatalf("Dalle3 = %q, want enhanced description %q", body.Prompts.Dalle3, want)
	}
	if !strings.Contains(body.Prompts.NanoBanana, "highly detailed, professional quality") {
		t.Fatalf("NanoBanana = %q, want quality modifiers", body.Prompts.NanoBanana)
	}
}

func TestAnalyzeImageUnsupportedFormat(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})

	buf, contentType := imagePart(t, "doc.pdf", "application/pdf", []byte("%PDF-1.4"))
	resp, err := http.Post(srv.URL+"/api/analyze-image", contentType, buf)
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if body.Error != "unsupported_format" {
		t.Fatalf("error = %q", body.Error)
	}
}

func TestImageModels(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})
	resp, err := http.Get(srv.URL + "/api/image-models")
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Models []struct {
			ID string `json:"id"`
		} `json:"models"`
	}
	decodeBody(t, resp, &body)
	if len(body.Models) != 5 {
		t.Fatalf("models = %d entries", len(body.Models))
	}
}

func TestTemplatesEndpoints(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})

	resp, err := http.Get(srv.URL + "/api/templates")
	if err != nil {
		t.Fatal(err)
	}
	var list struct {
		Templates []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"templates"`
	}
	decodeBody(t, resp, &list)
	if len(list.Templates) == 0 {
		t.Fatal("no templates")
	}

	resp, err = http.Get(srv.URL + "/api/templates/" + list.Templates[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	var one struct {
		Template struct {
			ID     string              `json:"id"`
			Params domain.PromptParams `json:"params"`
		} `json:"template"`
	}
	decodeBody(t, resp, &one)
	if one.Template.ID != list.Templates[0].ID {
		t.Fatalf("template id = %q", one.Template.ID)
	}
	if one.Template.Params.Subject == "" {
		t.Fatal("template params missing")
	}

	resp, err = http.Get(srv.URL + "/api/templates/tpl-missing")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestGetResultValidation(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})

	resp, err := http.Get(srv.URL + "/api/results/not-a-uuid")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d for malformed id", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/results/8b5dbe19-2221-4f6a-9c3d-31fca8f7f0a1")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d for unknown id", resp.StatusCode)
	}
}

func TestListResultsWithoutDatabase(t *testing.T) {
	srv := newTestServer(t, &stubParser{}, &stubFetcher{})

	resp, err := http.Get(srv.URL + "/api/results")
	if err != nil {
		t.Fatal(err)
	}
	var body struct {
		Success bool                      `json:"success"`
		Records []domain.GenerationRecord `json:"records"`
	}
	decodeBody(t, resp, &body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success || len(body.Records) != 0 {
		t.Fatalf("body = %+v", body)
	}

	resp, err = http.Get(srv.URL + "/api/results?limit=0")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d for limit=0", resp.StatusCode)
	}
}
