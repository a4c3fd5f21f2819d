package promptgen

import (
	"math/rand"
	"strings"
	"time"

	"promptserver/internal/domain"
)

// imageFormat carries the rendering envelope of one image target.
type imageFormat struct {
	prefix    string
	suffix    string
	maxLength int
}

var imageFormats = map[string]imageFormat{
	"midjourney": {
		suffix:    " --ar 16:9 --v 6 --style expressive --q 2",
		maxLength: 4000,
	},
	"stableDiffusion": {
		maxLength: 2000,
	},
	"dalle3": {
		maxLength: 4000,
	},
	"ideogram": {
		maxLength: 2000,
	},
	"nanoBanana": {
		prefix:    "cute kawaii illustration of ",
		suffix:    ", disney style, cute, adorable, pastel colors, soft lighting",
		maxLength: 500,
	},
}

// styleEnhancers is the word bank random insertions are drawn from.
var styleEnhancers = struct {
	lighting []string
	camera   []string
	mood     []string
	quality  []string
}{
	lighting: []string{
		"cinematic lighting", "golden hour", "soft natural light", "studio lighting",
		"dramatic shadows", "backlit", "rim light", "volumetric lighting",
	},
	camera: []string{
		"wide angle", "telephoto", "macro lens", "depth of field", "bokeh",
		"rule of thirds", "centered composition", "leading lines",
	},
	mood: []string{
		"peaceful", "dramatic", "mysterious", "energetic", "romantic", "melancholic",
		"ethereal", "dreamy", "vibrant", "moody",
	},
	quality: []string{
		"highly detailed", "8k resolution", "photorealistic", "masterpiece",
		"award winning", "professional photography", "concept art",
	},
}

// ImageRenderer renders a description into every image-target prompt. The
// random source feeding style-enhancer picks is injected so tests can seed it.
type ImageRenderer struct {
	rng *rand.Rand
}

// NewImageRenderer builds a renderer over the given source; nil seeds one
// from the clock.
func NewImageRenderer(src rand.Source) *ImageRenderer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &ImageRenderer{rng: rand.New(src)}
}

// EnhanceDescription appends generic quality modifiers unless the description
// already speaks about detail or quality.
func EnhanceDescription(text string) string {
	if strings.Contains(text, "detailed") || strings.Contains(text, "quality") {
		return text
	}
	return text + ", highly detailed, professional quality"
}

// Render is the deterministic local path: the description is enhanced once,
// then rendered per target.
func (r *ImageRenderer) Render(description string) domain.ImagePrompts {
	return r.RenderRaw(EnhanceDescription(description))
}

// RenderRaw renders per target without the enhancement pre-step. It backs the
// field-by-field fallback of the AI-assisted path.
func (r *ImageRenderer) RenderRaw(description string) domain.ImagePrompts {
	return domain.ImagePrompts{
		Midjourney:      r.Midjourney(description),
		StableDiffusion: r.StableDiffusion(description),
		Dalle3:          r.Dalle3(description),
		Ideogram:        r.Ideogram(description),
		NanoBanana:      r.NanoBanana(description),
	}
}

func (r *ImageRenderer) Midjourney(description string) string {
	f := imageFormats["midjourney"]
	s := f.prefix + description +
		", " + r.pick(styleEnhancers.mood) +
		", " + r.pick(styleEnhancers.lighting) +
		f.suffix
	return capRunes(s, f.maxLength)
}

func (r *ImageRenderer) StableDiffusion(description string) string {
	f := imageFormats["stableDiffusion"]
	s := f.prefix + description + ", " + r.pick(styleEnhancers.quality) + f.suffix
	return capRunes(s, f.maxLength)
}

func (r *ImageRenderer) Dalle3(description string) string {
	f := imageFormats["dalle3"]
	return capRunes(f.prefix+description+f.suffix, f.maxLength)
}

func (r *ImageRenderer) Ideogram(description string) string {
	f := imageFormats["ideogram"]
	return capRunes(f.prefix+description+", typography design"+f.suffix, f.maxLength)
}

func (r *ImageRenderer) NanoBanana(description string) string {
	f := imageFormats["nanoBanana"]
	return capRunes(f.prefix+description+f.suffix, f.maxLength)
}

func (r *ImageRenderer) pick(bank []string) string {
	return bank[r.rng.Intn(len(bank))]
}

// capRunes hard-truncates to max runes; cutting mid-word is accepted.
func capRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ImageModel describes one supported image target for catalog endpoints.
type ImageModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// ImageModels lists the supported image targets.
func ImageModels() []ImageModel {
	return []ImageModel{
		{ID: "midjourney", Name: "Midjourney", Icon: "🎨", Description: "artistic range and strong stylization"},
		{ID: "stable-diffusion", Name: "Stable Diffusion", Icon: "🖌️", Description: "open and controllable, rich plugin ecosystem"},
		{ID: "dalle3", Name: "DALL-E 3", Icon: "🎭", Description: "strong natural-language understanding"},
		{ID: "ideogram", Name: "Ideogram", Icon: "✍️", Description: "excels at rendering typography"},
		{ID: "nano-banana", Name: "Nano Banana", Icon: "🍌", Description: "cute cartoon styles"},
	}
}

// MaxPromptLength reports the hard cap of the given target, zero when the
// target is unknown.
func MaxPromptLength(target string) int {
	return imageFormats[target].maxLength
}
