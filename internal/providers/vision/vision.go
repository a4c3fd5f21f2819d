// Package vision analyzes uploaded images with a multimodal model so the
// result can be reduced back into prompt text.
package vision

import (
	"context"

	"promptserver/internal/domain"
)

// Analyzer produces a structured analysis of image bytes. CaptionImage is the
// cheaper secondary pass used when the structured analysis comes back without
// a caption.
type Analyzer interface {
	AnalyzeImage(ctx context.Context, data []byte, mimeType string) (domain.ImageAnalysis, error)
	CaptionImage(ctx context.Context, data []byte, mimeType string) (string, error)
}

const analyzeInstruction = `You are an expert AI image analyst and prompt engineer.
Analyze the image and provide detailed information in JSON format:

{
  "caption": "Brief description of the image (1-2 sentences)",
  "subjects": ["main subject 1", "main subject 2"],
  "style": "artistic style (e.g., photorealistic, anime, oil painting, etc.)",
  "lighting": "lighting condition (e.g., natural daylight, golden hour, studio lighting, etc.)",
  "composition": "composition type (e.g., rule of thirds, centered, wide shot, close-up, etc.)",
  "colors": ["dominant color 1", "dominant color 2"],
  "mood": "overall mood (e.g., peaceful, dramatic, energetic, etc.)",
  "technical": "technical details (camera, lens, render quality if applicable)"
}

Provide ONLY valid JSON, no other text.`

const captionInstruction = `Generate a detailed caption describing this image. Include subject, setting, lighting, style, and mood.`
