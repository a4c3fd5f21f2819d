package textgen

import (
	"strings"
	"testing"

	"promptserver/internal/promptgen"
)

func TestDecodeExtraction(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSubject string
		wantErr     bool
	}{
		{
			name:        "plain object",
			raw:         `{"subject": "a cat", "action": "napping"}`,
			wantSubject: "a cat",
		},
		{
			name:        "code fenced",
			raw:         "```json\n{\"subject\": \"a cat\"}\n```",
			wantSubject: "a cat",
		},
		{
			name:        "surrounding prose",
			raw:         "Here is the extraction you asked for:\n{\"subject\": \"a cat\"}\nLet me know if you need more.",
			wantSubject: "a cat",
		},
		{
			name:        "type mismatch keeps decoded fields",
			raw:         `{"subject": "a cat", "duration": "soon"}`,
			wantSubject: "a cat",
		},
		{
			name:    "no json at all",
			raw:     "sorry, I cannot do that",
			wantErr: true,
		},
		{
			name:    "empty completion",
			raw:     "   ",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeExtraction(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeExtraction: %v", err)
			}
			if got.Subject != tt.wantSubject {
				t.Fatalf("Subject = %q, want %q", got.Subject, tt.wantSubject)
			}
		})
	}
}

func TestDecodeImagePayload(t *testing.T) {
	raw := "```json\n{\"midjourney\": \"mj prompt\", \"dalle3\": \"d3 prompt\"}\n```"
	payload, err := decodeImagePayload(raw)
	if err != nil {
		t.Fatalf("decodeImagePayload: %v", err)
	}
	if payload.Midjourney != "mj prompt" {
		t.Fatalf("Midjourney = %q", payload.Midjourney)
	}
	if payload.Dalle3 != "d3 prompt" {
		t.Fatalf("Dalle3 = %q", payload.Dalle3)
	}
	if payload.Ideogram != "" {
		t.Fatalf("Ideogram = %q, want empty", payload.Ideogram)
	}
	if _, err := decodeImagePayload("nothing here"); err == nil {
		t.Fatal("expected error for non-JSON completion")
	}
}

func TestMergeImagePrompts(t *testing.T) {
	renderer := promptgen.NewImageRenderer(nil)
	base := renderer.RenderRaw("a red fox")
	payload := imagePromptPayload{
		Midjourney: "  custom midjourney prompt  ",
		NanoBanana: "custom nano prompt",
	}
	got := mergeImagePrompts(payload, "a red fox", renderer)
	if got.Midjourney != "custom midjourney prompt" {
		t.Fatalf("Midjourney = %q", got.Midjourney)
	}
	if got.NanoBanana != "custom nano prompt" {
		t.Fatalf("NanoBanana = %q", got.NanoBanana)
	}
	if got.Dalle3 != base.Dalle3 {
		t.Fatalf("Dalle3 = %q, want locally rendered %q", got.Dalle3, base.Dalle3)
	}
	if got.Ideogram != base.Ideogram {
		t.Fatalf("Ideogram = %q, want locally rendered %q", got.Ideogram, base.Ideogram)
	}
}

func TestMergeImagePromptsClampsLongOutput(t *testing.T) {
	renderer := promptgen.NewImageRenderer(nil)
	long := strings.Repeat("霓虹灯下的城市 ", 400)
	payload := imagePromptPayload{StableDiffusion: long}
	got := mergeImagePrompts(payload, "a city", renderer)
	max := promptgen.MaxPromptLength("stableDiffusion")
	if n := len([]rune(got.StableDiffusion)); n > max {
		t.Fatalf("StableDiffusion length = %d runes, cap %d", n, max)
	}
}

func TestExtractJSONFragment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"fenced object", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"prose wrapped array", "result: [1,2] done", "[1,2]"},
		{"no structure", "plain words", "plain words"},
		{"blank", "  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONFragment(tt.raw); got != tt.want {
				t.Fatalf("extractJSONFragment(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
