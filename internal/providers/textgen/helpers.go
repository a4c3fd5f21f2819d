package textgen

import (
	"encoding/json"
	"errors"
	"strings"

	"promptserver/internal/domain"
	"promptserver/internal/promptgen"
)

// imagePromptPayload mirrors the five-key JSON object the image instruction
// asks the model to return.
type imagePromptPayload struct {
	Midjourney      string `json:"midjourney"`
	StableDiffusion string `json:"stableDiffusion"`
	Dalle3          string `json:"dalle3"`
	Ideogram        string `json:"ideogram"`
	NanoBanana      string `json:"nanoBanana"`
}

// decodeExtraction pulls the first JSON object out of a completion and
// decodes it into a raw extraction. Individual field type mismatches are
// tolerated so the fields that did decode survive; only a missing or
// undecodable object is an error.
func decodeExtraction(raw string) (domain.RawExtraction, error) {
	var extraction domain.RawExtraction
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return extraction, errors.New("no json object in completion")
	}
	if err := json.Unmarshal([]byte(cleaned), &extraction); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return extraction, err
		}
	}
	return extraction, nil
}

func decodeImagePayload(raw string) (imagePromptPayload, error) {
	var payload imagePromptPayload
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return payload, errors.New("no json object in completion")
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return payload, err
		}
	}
	return payload, nil
}

// mergeImagePrompts overlays the model's per-target prompts onto locally
// rendered defaults, so a partially useful completion degrades field by
// field. The local side renders from the raw description without the
// enhancement pre-step, and model output is clamped to each target's cap.
func mergeImagePrompts(payload imagePromptPayload, description string, renderer *promptgen.ImageRenderer) domain.ImagePrompts {
	out := renderer.RenderRaw(description)
	if v := strings.TrimSpace(payload.Midjourney); v != "" {
		out.Midjourney = clamp(v, "midjourney")
	}
	if v := strings.TrimSpace(payload.StableDiffusion); v != "" {
		out.StableDiffusion = clamp(v, "stableDiffusion")
	}
	if v := strings.TrimSpace(payload.Dalle3); v != "" {
		out.Dalle3 = clamp(v, "dalle3")
	}
	if v := strings.TrimSpace(payload.Ideogram); v != "" {
		out.Ideogram = clamp(v, "ideogram")
	}
	if v := strings.TrimSpace(payload.NanoBanana); v != "" {
		out.NanoBanana = clamp(v, "nanoBanana")
	}
	return out
}

func clamp(s, target string) string {
	max := promptgen.MaxPromptLength(target)
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// extractJSONFragment trims prose and code fences around the JSON object a
// completion is expected to contain.
func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
