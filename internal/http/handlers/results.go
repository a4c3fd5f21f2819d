package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptserver/pkg/zip"
)

// ListResults returns the most recent stored generations, newest first.
// Without a database the history is empty rather than an error.
func (a *App) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			a.error(w, http.StatusBadRequest, "bad_request", "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}
	records, err := a.listRecords(r.Context(), limit)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "could not list results")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "records": records})
}

func (a *App) GetResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid result id")
		return
	}
	record, err := a.loadRecord(r.Context(), id)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "result not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "record": record})
}

// ExportResult streams stored prompts as a zip with one text file per target.
func (a *App) ExportResult(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid result id")
		return
	}
	record, err := a.loadRecord(r.Context(), id)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "result not found")
		return
	}

	assets := []zip.Asset{
		{Filename: "sora2.txt", MIME: "text/plain", Data: []byte(record.Outputs.Sora2)},
		{Filename: "veo3.txt", MIME: "text/plain", Data: []byte(record.Outputs.Veo3)},
		{Filename: "seedance2.txt", MIME: "text/plain", Data: []byte(record.Outputs.Seedance2)},
	}
	archive := zip.ArchiveAssets(assets)
	if len(archive) == 0 {
		a.error(w, http.StatusInternalServerError, "internal", "archive failed")
		return
	}

	filename := fmt.Sprintf("prompts-%s.zip", strings.Split(id, "-")[0])
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
