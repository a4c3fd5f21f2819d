package domain

import "strings"

// Defaults substituted for missing or out-of-vocabulary extraction fields.
const (
	DefaultSubject    = "a person"
	DefaultAction     = "standing in a scene"
	DefaultScene      = "modern indoor environment"
	DefaultLens       = "35mm"
	DefaultColorGrade = "natural colors"
	DefaultQuality    = "4K cinematic"
	DefaultDuration   = 10
)

const (
	DefaultShotType    = ShotMedium
	DefaultMovement    = MovementStatic
	DefaultAngle       = AngleEyeLevel
	DefaultVisual      = StyleCinematic
	DefaultLighting    = LightingNatural
	DefaultAspectRatio = Aspect16x9
)

// RawExtraction mirrors the loosely typed JSON object a text-completion model
// is asked to produce. Any field may be absent, misspelled, or of the wrong
// type; decoding errors are tolerated so partially valid objects keep the
// fields that did decode.
type RawExtraction struct {
	Subject string `json:"subject"`
	Action  string `json:"action"`
	Scene   string `json:"scene"`
	Camera  struct {
		ShotType string `json:"shot_type"`
		Movement string `json:"movement"`
		Angle    string `json:"angle"`
		Lens     string `json:"lens"`
	} `json:"camera"`
	Style struct {
		Visual   string `json:"visual"`
		Lighting string `json:"lighting"`
		Color    string `json:"color"`
		Quality  string `json:"quality"`
	} `json:"style"`
	Audio       string  `json:"audio"`
	Duration    float64 `json:"duration"`
	AspectRatio string  `json:"aspect_ratio"`
}

// Canonicalize converts a raw extraction of unknown provenance into a fully
// populated parameter set. It is total and pure: every missing, blank, or
// out-of-vocabulary field is replaced by its default, so the result always
// satisfies the canonical invariants. Calling it on its own (re-encoded)
// output is the identity.
func Canonicalize(raw RawExtraction) PromptParams {
	params := PromptParams{
		Subject: fallback(raw.Subject, DefaultSubject),
		Action:  fallback(raw.Action, DefaultAction),
		Scene:   fallback(raw.Scene, DefaultScene),
		Camera: CameraConfig{
			ShotType: canonicalShot(raw.Camera.ShotType),
			Movement: canonicalMovement(raw.Camera.Movement),
			Angle:    canonicalAngle(raw.Camera.Angle),
			Lens:     fallback(raw.Camera.Lens, DefaultLens),
		},
		Style: StyleConfig{
			Visual:     canonicalVisual(raw.Style.Visual),
			Lighting:   canonicalLighting(raw.Style.Lighting),
			ColorGrade: fallback(raw.Style.Color, DefaultColorGrade),
			Quality:    fallback(raw.Style.Quality, DefaultQuality),
		},
		Audio:       strings.TrimSpace(raw.Audio),
		Duration:    int(raw.Duration),
		AspectRatio: canonicalAspect(raw.AspectRatio),
	}
	if params.Duration <= 0 {
		params.Duration = DefaultDuration
	}
	return params
}

// DefaultParams returns the parameter set produced when extraction fails
// entirely, equivalent to canonicalizing an empty extraction.
func DefaultParams() PromptParams {
	return Canonicalize(RawExtraction{})
}

// ApplyPartial overlays adapter-recovered fields onto a raw extraction so the
// remaining gaps are filled by the canonical default table.
func (p PartialParams) ApplyPartial() PromptParams {
	raw := RawExtraction{
		Subject: p.Subject,
		Scene:   p.Scene,
		Audio:   p.Audio,
	}
	params := Canonicalize(raw)
	if p.Style != nil {
		params.Style = *p.Style
	}
	return params
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}

func canonicalShot(v string) ShotType {
	if s := ShotType(v); s.Valid() {
		return s
	}
	return DefaultShotType
}

func canonicalMovement(v string) CameraMovement {
	if m := CameraMovement(v); m.Valid() {
		return m
	}
	return DefaultMovement
}

func canonicalAngle(v string) CameraAngle {
	if a := CameraAngle(v); a.Valid() {
		return a
	}
	return DefaultAngle
}

func canonicalVisual(v string) VisualStyle {
	if s := VisualStyle(v); s.Valid() {
		return s
	}
	return DefaultVisual
}

func canonicalLighting(v string) LightingType {
	if l := LightingType(v); l.Valid() {
		return l
	}
	return DefaultLighting
}

func canonicalAspect(v string) AspectRatio {
	if r := AspectRatio(v); r.Valid() {
		return r
	}
	return DefaultAspectRatio
}
