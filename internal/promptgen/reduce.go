package promptgen

import (
	"strings"

	"promptserver/internal/domain"
)

// ReduceImageAnalysis flattens a vision-model analysis into the single
// description string the image renderer consumes. Field order is fixed:
// subjects, style, lighting, composition, mood, colors; empty fields are
// skipped. When nothing survives, the caption is the answer.
func ReduceImageAnalysis(a domain.ImageAnalysis) string {
	var parts []string

	if len(a.Subjects) > 0 {
		parts = append(parts, strings.Join(a.Subjects, ", "))
	}
	if a.Style != "" {
		parts = append(parts, a.Style)
	}
	if a.Lighting != "" {
		parts = append(parts, a.Lighting)
	}
	if a.Composition != "" {
		parts = append(parts, a.Composition)
	}
	if a.Mood != "" {
		parts = append(parts, a.Mood)
	}
	if len(a.Colors) > 0 {
		parts = append(parts, strings.Join(a.Colors, ", "))
	}

	description := strings.Join(parts, ", ")
	if description == "" {
		return a.Caption
	}
	return description
}
