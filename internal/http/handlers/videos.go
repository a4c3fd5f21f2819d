package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"promptserver/internal/domain"
	"promptserver/internal/middleware"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/videometa"
)

type parseVideoRequest struct {
	URL string `json:"url"`
}

type platformInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type videoInfo struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Author      domain.VideoAuthor `json:"author"`
	Cover       string             `json:"cover"`
}

type parseVideoResponse struct {
	Success  bool                `json:"success"`
	ID       string              `json:"id"`
	Platform platformInfo        `json:"platform"`
	Video    videoInfo           `json:"video"`
	Params   domain.PromptParams `json:"params"`
	Outputs  domain.ModelPrompts `json:"outputs"`
}

// ParseVideo resolves a share link into metadata, adapts it to partial prompt
// parameters and renders the video prompts from the completed set.
func (a *App) ParseVideo(w http.ResponseWriter, r *http.Request) {
	var req parseVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	rawURL := strings.TrimSpace(req.URL)
	if rawURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "url is required")
		return
	}

	platform := videometa.DetectPlatform(rawURL)
	if platform == domain.PlatformUnknown {
		a.json(w, http.StatusBadRequest, map[string]any{
			"error":              "unsupported platform",
			"supportedPlatforms": videometa.SupportedPlatforms(),
		})
		return
	}

	meta, err := a.Videos.FetchVideo(r.Context(), rawURL)
	if err != nil || meta == nil {
		if errors.Is(err, domain.ErrUnsupportedPlatform) {
			a.json(w, http.StatusBadRequest, map[string]any{
				"error":              "unsupported platform",
				"supportedPlatforms": videometa.SupportedPlatforms(),
			})
			return
		}
		a.error(w, http.StatusBadRequest, "parse_failed", "could not resolve video")
		return
	}

	partial := promptgen.AdaptVideoMetadata(*meta)
	params := partial.ApplyPartial()
	locale := middleware.LocaleFromContext(r.Context())
	outputs := promptgen.RenderVideoPrompts(params, locale)

	record := domain.NewGenerationRecord(domain.ModeVideo, params, outputs)
	record.SourceURL = rawURL
	record.SourceText = meta.Description
	a.saveRecord(r.Context(), &record)

	a.json(w, http.StatusOK, parseVideoResponse{
		Success: true,
		ID:      record.ID,
		Platform: platformInfo{
			ID:   string(meta.Platform),
			Name: videometa.PlatformName(meta.Platform),
		},
		Video: videoInfo{
			ID:          meta.VideoID,
			Title:       meta.Title,
			Description: meta.Description,
			Author:      meta.Author,
			Cover:       meta.Cover,
		},
		Params:  params,
		Outputs: outputs,
	})
}

// Platforms lists which share-link hosts the parser understands.
func (a *App) Platforms(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"platforms": videometa.SupportedPlatforms()})
}
