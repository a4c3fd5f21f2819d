package textgen

// videoParseInstruction asks the model to turn free text into the raw
// extraction schema. Canonicalize cleans up whatever comes back.
const videoParseInstruction = `You are a professional AI video prompt parsing expert.
Parse the user's natural language description into structured parameters.

Output JSON format:
{
  "subject": "main subject",
  "action": "action description",
  "scene": "scene environment",
  "camera": {
    "shot_type": "medium_shot",
    "movement": "static",
    "angle": "eye_level",
    "lens": "35mm"
  },
  "style": {
    "visual": "cinematic",
    "lighting": "natural",
    "color": "natural colors",
    "quality": "4K cinematic"
  },
  "audio": "",
  "duration": 10,
  "aspect_ratio": "16:9"
}

Rules:
1. Intelligently fill reasonable details
2. Extract cinematography terms
3. Output valid JSON only`

// imagePromptInstruction asks the model for one optimized prompt per image
// target, keyed exactly like ImagePrompts marshals.
const imagePromptInstruction = `You are an expert AI image prompt engineer.
Generate optimized prompts for 5 different AI image models based on the user's description.

Output ONLY valid JSON in this exact format:
{
  "midjourney": "optimized prompt for Midjourney",
  "stableDiffusion": "optimized prompt for Stable Diffusion",
  "dalle3": "optimized prompt for DALL-E 3",
  "ideogram": "optimized prompt for Ideogram",
  "nanoBanana": "optimized prompt for Nano Banana"
}

Rules:
1. Each prompt should be 50-200 characters
2. Include relevant style, lighting, and composition keywords
3. Use appropriate syntax for each model
4. Output ONLY JSON, no other text`
