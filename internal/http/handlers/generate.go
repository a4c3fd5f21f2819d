package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"promptserver/internal/domain"
	"promptserver/internal/middleware"
	"promptserver/internal/promptgen"
	"promptserver/internal/providers/textgen"
)

type generateRequest struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Success  bool                `json:"success"`
	ID       string              `json:"id"`
	Params   domain.PromptParams `json:"params"`
	Outputs  domain.ModelPrompts `json:"outputs"`
	Provider string              `json:"provider"`
}

// Generate turns a free-text description into the full set of video prompts.
// Provider failure is absorbed inside the parser's fallback chain, so this
// path only errors on malformed input.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "text is required")
		return
	}

	res, err := a.Parser.ParseVideoPrompt(r.Context(), text)
	if err != nil || res == nil {
		res = &textgen.VideoParseResult{
			Params:   domain.DefaultParams(),
			Provider: textgen.StaticProviderName,
		}
	}
	locale := middleware.LocaleFromContext(r.Context())
	outputs := promptgen.RenderVideoPrompts(res.Params, locale)

	record := domain.NewGenerationRecord(domain.ModeText, res.Params, outputs)
	record.SourceText = text
	a.saveRecord(r.Context(), &record)

	a.json(w, http.StatusOK, generateResponse{
		Success:  true,
		ID:       record.ID,
		Params:   res.Params,
		Outputs:  outputs,
		Provider: res.Provider,
	})
}
