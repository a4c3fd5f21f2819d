package promptgen

import (
	"fmt"
	"strings"

	"promptserver/internal/domain"
)

// RenderVideoPrompts renders an already-canonicalized parameter set into the
// grammar of each supported video model. Rendering is pure string composition
// over validated enums and cannot fail.
func RenderVideoPrompts(p domain.PromptParams, locale string) domain.ModelPrompts {
	return domain.ModelPrompts{
		Sora2:     RenderSora2(p, locale),
		Veo3:      RenderVeo3(p),
		Seedance2: RenderSeedance2(p),
	}
}

// RenderSora2 composes a natural-language sentence in the operator's locale,
// joined with a full-width comma. Camera and style fragments come from the
// locale phrase tables.
func RenderSora2(p domain.PromptParams, locale string) string {
	t := tableFor(locale)

	camera := t.shots[p.Camera.ShotType] + t.join + t.movements[p.Camera.Movement]
	style := t.visuals[p.Style.Visual] + t.join + t.lightings[p.Style.Lighting] + t.join + p.Style.ColorGrade

	parts := []string{
		camera,
		fmt.Sprintf(t.subjectScene, p.Subject, p.Scene),
		p.Action,
		style,
	}
	if p.Audio != "" {
		parts = append(parts, t.audioLabel+p.Audio)
	}
	parts = append(parts, fmt.Sprintf("%s, %s", p.Style.Quality, p.AspectRatio))

	return strings.Join(parts, "，")
}

// RenderVeo3 composes sentence-per-clause English, clauses joined with ". ".
func RenderVeo3(p domain.PromptParams) string {
	parts := []string{
		fmt.Sprintf("%s, %s", words(string(p.Camera.ShotType)), words(string(p.Camera.Movement))),
	}
	if p.Camera.Lens != "" {
		parts = append(parts, p.Camera.Lens)
	}
	parts = append(parts,
		p.Subject,
		p.Action,
		p.Scene,
		words(string(p.Style.Lighting))+" lighting",
		fmt.Sprintf("%s style, %s", p.Style.Visual, p.Style.ColorGrade),
	)
	if p.Audio != "" {
		parts = append(parts, "with "+p.Audio)
	}
	parts = append(parts, p.Style.Quality)

	return strings.Join(parts, ". ")
}

// RenderSeedance2 emits the labeled multi-line block. Lens and Audio lines
// appear only when the source field is non-empty.
func RenderSeedance2(p domain.PromptParams) string {
	lines := []string{
		"Subject: " + p.Subject,
		"Action: " + p.Action,
		"Scene: " + p.Scene,
		fmt.Sprintf("Camera: %s + %s, %s",
			words(string(p.Camera.ShotType)),
			words(string(p.Camera.Movement)),
			words(string(p.Camera.Angle))),
	}
	if p.Camera.Lens != "" {
		lines = append(lines, "Lens: "+p.Camera.Lens)
	}
	lines = append(lines, fmt.Sprintf("Style: %s, %s light, %s",
		p.Style.Visual,
		words(string(p.Style.Lighting)),
		p.Style.ColorGrade))
	if p.Audio != "" {
		lines = append(lines, "Audio: "+p.Audio)
	}
	lines = append(lines, fmt.Sprintf("Output: %s, %s", p.Style.Quality, p.AspectRatio))

	return strings.Join(lines, "\n")
}

// words rewrites an enum token for human-readable sentences.
func words(token string) string {
	return strings.ReplaceAll(token, "_", " ")
}
