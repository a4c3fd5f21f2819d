package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptserver/internal/promptgen"
)

type templateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Usage       int    `json:"usage"`
}

func (a *App) Templates(w http.ResponseWriter, r *http.Request) {
	all := promptgen.Templates()
	summaries := make([]templateSummary, 0, len(all))
	for _, tpl := range all {
		summaries = append(summaries, templateSummary{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Category:    string(tpl.Category),
			Description: tpl.Description,
			Usage:       tpl.Usage,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"templates": summaries})
}

func (a *App) TemplateByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tpl, ok := promptgen.TemplateByID(id)
	if !ok {
		a.error(w, http.StatusNotFound, "not_found", "template not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"template": tpl})
}
