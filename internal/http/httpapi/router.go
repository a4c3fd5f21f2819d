package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"promptserver/internal/http/handlers"
	"promptserver/internal/middleware"
)

// NewRouter builds the chi router with the shared middleware chain and every
// API route. countryLookup may be nil when no GeoIP database is configured.
func NewRouter(app *handlers.App, countryLookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS([]string{"*"}),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
		middleware.I18N(app.Config.DefaultLocale, countryLookup),
	)

	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", app.Generate)
		r.Post("/parse-video", app.ParseVideo)
		r.Get("/platforms", app.Platforms)
		r.Post("/generate-image", app.GenerateImage)
		r.Post("/analyze-image", app.AnalyzeImage)
		r.Get("/image-models", app.ImageModels)
		r.Get("/templates", app.Templates)
		r.Get("/templates/{id}", app.TemplateByID)
		r.Get("/results", app.ListResults)
		r.Get("/results/{id}", app.GetResult)
		r.Get("/results/{id}/export", app.ExportResult)
	})

	return r
}
