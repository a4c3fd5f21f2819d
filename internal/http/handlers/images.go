package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"promptserver/internal/domain"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/textgen"
)

const maxImageBytes = 10 << 20

var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type generateImageRequest struct {
	Text string `json:"text"`
}

type generateImageResponse struct {
	Success bool                `json:"success"`
	Text    string              `json:"text"`
	Prompts domain.ImagePrompts `json:"prompts"`
	Note    string              `json:"note,omitempty"`
}

// GenerateImage turns a text description into per-model image prompts. When
// the AI rewrite is unavailable the local renderer result ships with a note
// instead of an error.
func (a *App) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text is required")
		return
	}

	resp := generateImageResponse{Success: true, Text: text}
	res, err := a.Parser.EnhanceImagePrompts(r.Context(), text)
	if err != nil || res == nil {
		resp.Prompts = a.Images.Render(text)
		resp.Note = "AI优化不可用"
	} else {
		resp.Prompts = res.Prompts
		if res.Provider == textgen.StaticProviderName {
			resp.Note = "AI优化不可用"
		}
	}
	a.json(w, http.StatusOK, resp)
}

type analyzeImageResponse struct {
	Success  bool                 `json:"success"`
	Analysis domain.ImageAnalysis `json:"analysis"`
	Prompts  domain.ImagePrompts  `json:"prompts"`
}

// AnalyzeImage accepts a multipart upload, runs the vision analysis and
// reduces the result into image prompts. Vision failure degrades to an empty
// analysis rather than an error.
func (a *App) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		a.error(w, http.StatusBadRequest, "bad_request", "content type must be multipart/form-data")
		return
	}
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid multipart payload")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "image file is required")
		return
	}
	defer func() {
		_ = file.Close()
	}()
	if header.Size > maxImageBytes {
		a.error(w, http.StatusBadRequest, "image_too_large", fmt.Sprintf("image too large, max %dMB", maxImageBytes/1024/1024))
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if !supportedImageTypes[mimeType] {
		a.error(w, http.StatusBadRequest, "unsupported_format", "unsupported image format")
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "could not read image")
		return
	}
	if len(data) > maxImageBytes {
		a.error(w, http.StatusBadRequest, "image_too_large", fmt.Sprintf("image too large, max %dMB", maxImageBytes/1024/1024))
		return
	}

	if a.Store != nil {
		key := fmt.Sprintf("uploads/%s/%s", time.Now().UTC().Format("2006-01-02"), path.Base(header.Filename))
		if _, err := a.Store.Write(r.Context(), key, data); err != nil {
			a.Logger.Warn().Err(err).Msg("store upload failed")
		}
	}

	analysis := a.analyzeWithFallback(r, data, mimeType)
	description := promptgen.ReduceImageAnalysis(analysis)
	prompts := a.Images.Render(description)

	a.json(w, http.StatusOK, analyzeImageResponse{
		Success:  true,
		Analysis: analysis,
		Prompts:  prompts,
	})
}

func (a *App) analyzeWithFallback(r *http.Request, data []byte, mimeType string) domain.ImageAnalysis {
	if a.Vision == nil {
		return domain.ImageAnalysis{}
	}
	analysis, err := a.Vision.AnalyzeImage(r.Context(), data, mimeType)
	if err != nil {
		a.Logger.Warn().Err(err).Msg("image analysis failed")
		analysis = domain.ImageAnalysis{}
	}
	if analysis.Caption == "" {
		if caption, err := a.Vision.CaptionImage(r.Context(), data, mimeType); err == nil {
			analysis.Caption = caption
		}
	}
	return analysis
}

// ImageModels lists the supported image targets and their prompt caps.
func (a *App) ImageModels(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"models": promptgen.ImageModels()})
}
