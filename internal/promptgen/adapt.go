package promptgen

import (
	"strings"

	"promptserver/internal/domain"
)

// tagStyleRule maps tag keywords to an inferred style. Rules are checked in
// order and the first keyword hit wins; keywords are matched case-sensitively
// against the joined tag string.
type tagStyleRule struct {
	keywords []string
	style    domain.StyleConfig
}

var tagStyleRules = []tagStyleRule{
	{
		keywords: []string{"搞笑", "comedy"},
		style: domain.StyleConfig{
			Visual:     domain.StyleCinematic,
			Lighting:   domain.LightingNatural,
			ColorGrade: "bright and vibrant",
			Quality:    "1080p",
		},
	},
	{
		keywords: []string{"美食", "food"},
		style: domain.StyleConfig{
			Visual:     domain.StyleCommercial,
			Lighting:   domain.LightingSoft,
			ColorGrade: "warm and appetizing",
			Quality:    "4K",
		},
	},
	{
		keywords: []string{"旅行", "travel"},
		style: domain.StyleConfig{
			Visual:     domain.StyleDocumentary,
			Lighting:   domain.LightingNatural,
			ColorGrade: "cinematic",
			Quality:    "4K",
		},
	},
}

// AdaptVideoMetadata maps a scraped video record to the canonical fields it
// can recover. The result is partial: callers complete it through the default
// table before rendering.
func AdaptVideoMetadata(meta domain.VideoMetadata) domain.PartialParams {
	partial := domain.PartialParams{}

	if name := strings.TrimSpace(meta.Author.Name); name != "" {
		partial.Subject = "video creator: " + name
	}
	partial.Scene = meta.Description
	if partial.Scene == "" {
		partial.Scene = meta.Title
	}
	if meta.Music != nil {
		partial.Audio = meta.Music.Title + " - " + meta.Music.Author
	}

	if len(meta.Tags) > 0 {
		joined := strings.Join(meta.Tags, ", ")
		for _, rule := range tagStyleRules {
			if matchesAny(joined, rule.keywords) {
				style := rule.style
				partial.Style = &style
				break
			}
		}
	}

	return partial
}

func matchesAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
