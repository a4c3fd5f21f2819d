package promptgen

import "promptserver/internal/domain"

// TemplateCategory groups built-in prompt templates.
type TemplateCategory string

const (
	CategoryCinematic  TemplateCategory = "cinematic"
	CategoryCommercial TemplateCategory = "commercial"
	CategorySocial     TemplateCategory = "social"
	CategoryArtistic   TemplateCategory = "artistic"
)

// Template is a curated starting point users can render as-is.
type Template struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Category    TemplateCategory    `json:"category"`
	Description string              `json:"description"`
	Params      domain.PromptParams `json:"params"`
	Usage       int                 `json:"usage"`
}

var templates = []Template{
	{
		ID:          "tpl-city-night-drive",
		Name:        "City Night Drive",
		Category:    CategoryCinematic,
		Description: "moody night drive through a neon city",
		Params: domain.PromptParams{
			Subject: "a driver in a vintage car",
			Action:  "cruising slowly through rain-slicked streets",
			Scene:   "neon-lit downtown at night",
			Camera: domain.CameraConfig{
				ShotType: domain.ShotMedium,
				Movement: domain.MovementGimbal,
				Angle:    domain.AngleEyeLevel,
				Lens:     "35mm",
			},
			Style: domain.StyleConfig{
				Visual:     domain.StyleCyberpunk,
				Lighting:   domain.LightingNeon,
				ColorGrade: "teal and magenta",
				Quality:    "4K cinematic",
			},
			Duration:    10,
			AspectRatio: domain.Aspect21x9,
		},
		Usage: 182,
	},
	{
		ID:          "tpl-product-hero",
		Name:        "Product Hero Shot",
		Category:    CategoryCommercial,
		Description: "clean rotating hero shot for product launches",
		Params: domain.PromptParams{
			Subject: "a premium product on a pedestal",
			Action:  "rotating slowly under spotlights",
			Scene:   "seamless studio backdrop",
			Camera: domain.CameraConfig{
				ShotType: domain.ShotCloseUp,
				Movement: domain.MovementDollyIn,
				Angle:    domain.AngleLow,
				Lens:     "85mm",
			},
			Style: domain.StyleConfig{
				Visual:     domain.StyleCommercial,
				Lighting:   domain.LightingStudio,
				ColorGrade: "clean whites",
				Quality:    "4K cinematic",
			},
			Duration:    8,
			AspectRatio: domain.Aspect16x9,
		},
		Usage: 144,
	},
	{
		ID:          "tpl-street-food",
		Name:        "Street Food Story",
		Category:    CategorySocial,
		Description: "vertical street-food clip for short video feeds",
		Params: domain.PromptParams{
			Subject: "a street vendor",
			Action:  "tossing noodles in a flaming wok",
			Scene:   "busy night market stall",
			Camera: domain.CameraConfig{
				ShotType: domain.ShotMedium,
				Movement: domain.MovementHandheld,
				Angle:    domain.AngleEyeLevel,
				Lens:     "24mm",
			},
			Style: domain.StyleConfig{
				Visual:     domain.StyleDocumentary,
				Lighting:   domain.LightingHard,
				ColorGrade: "warm and appetizing",
				Quality:    "1080p",
			},
			Duration:    15,
			AspectRatio: domain.Aspect9x16,
		},
		Usage: 97,
	},
	{
		ID:          "tpl-ink-landscape",
		Name:        "Ink Wash Landscape",
		Category:    CategoryArtistic,
		Description: "slow aerial over a painterly mountain valley",
		Params: domain.PromptParams{
			Subject: "mist-covered mountains",
			Action:  "clouds drifting across the peaks",
			Scene:   "ink-wash valley at dawn",
			Camera: domain.CameraConfig{
				ShotType: domain.ShotExtremeLong,
				Movement: domain.MovementDrone,
				Angle:    domain.AngleBirdsEye,
			},
			Style: domain.StyleConfig{
				Visual:     domain.StyleMinimalist,
				Lighting:   domain.LightingBlueHour,
				ColorGrade: "muted monochrome",
				Quality:    "4K cinematic",
			},
			Duration:    12,
			AspectRatio: domain.Aspect16x9,
		},
		Usage: 58,
	},
}

// Templates returns the built-in template catalog.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// TemplateByID looks a template up; the second result reports existence.
func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
