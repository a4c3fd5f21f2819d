package domain

// ShotType enumerates supported camera shot framings.
type ShotType string

const (
	ShotExtremeCloseUp ShotType = "extreme_close_up"
	ShotCloseUp        ShotType = "close_up"
	ShotMedium         ShotType = "medium_shot"
	ShotLong           ShotType = "long_shot"
	ShotExtremeLong    ShotType = "extreme_long_shot"
	ShotWide           ShotType = "wide_shot"
)

// CameraMovement enumerates supported camera movements.
type CameraMovement string

const (
	MovementStatic   CameraMovement = "static"
	MovementPan      CameraMovement = "pan"
	MovementTilt     CameraMovement = "tilt"
	MovementDollyIn  CameraMovement = "dolly_in"
	MovementDollyOut CameraMovement = "dolly_out"
	MovementTruck    CameraMovement = "truck"
	MovementPedestal CameraMovement = "pedestal"
	MovementHandheld CameraMovement = "handheld"
	MovementGimbal   CameraMovement = "gimbal"
	MovementDrone    CameraMovement = "drone"
)

// CameraAngle enumerates supported camera angles.
type CameraAngle string

const (
	AngleEyeLevel CameraAngle = "eye_level"
	AngleLow      CameraAngle = "low_angle"
	AngleHigh     CameraAngle = "high_angle"
	AngleDutch    CameraAngle = "dutch_angle"
	AngleOverhead CameraAngle = "overhead"
	AngleBirdsEye CameraAngle = "birds_eye"
)

// VisualStyle enumerates supported visual styles.
type VisualStyle string

const (
	StyleCinematic   VisualStyle = "cinematic"
	StyleDocumentary VisualStyle = "documentary"
	StyleCommercial  VisualStyle = "commercial"
	StyleMusicVideo  VisualStyle = "music_video"
	StyleAnime       VisualStyle = "anime"
	StyleMinimalist  VisualStyle = "minimalist"
	StyleVintage     VisualStyle = "vintage"
	StyleNoir        VisualStyle = "noir"
	StyleCyberpunk   VisualStyle = "cyberpunk"
)

// LightingType enumerates supported lighting setups.
type LightingType string

const (
	LightingNatural    LightingType = "natural"
	LightingGoldenHour LightingType = "golden_hour"
	LightingBlueHour   LightingType = "blue_hour"
	LightingSoft       LightingType = "soft"
	LightingHard       LightingType = "hard"
	LightingNeon       LightingType = "neon"
	LightingStudio     LightingType = "studio"
	LightingDramatic   LightingType = "dramatic"
	LightingLowKey     LightingType = "low_key"
	LightingHighKey    LightingType = "high_key"
)

// AspectRatio enumerates supported output aspect ratios.
type AspectRatio string

const (
	Aspect16x9 AspectRatio = "16:9"
	Aspect9x16 AspectRatio = "9:16"
	Aspect4x3  AspectRatio = "4:3"
	Aspect3x4  AspectRatio = "3:4"
	Aspect1x1  AspectRatio = "1:1"
	Aspect21x9 AspectRatio = "21:9"
)

var shotTypes = map[ShotType]struct{}{
	ShotExtremeCloseUp: {},
	ShotCloseUp:        {},
	ShotMedium:         {},
	ShotLong:           {},
	ShotExtremeLong:    {},
	ShotWide:           {},
}

var cameraMovements = map[CameraMovement]struct{}{
	MovementStatic:   {},
	MovementPan:      {},
	MovementTilt:     {},
	MovementDollyIn:  {},
	MovementDollyOut: {},
	MovementTruck:    {},
	MovementPedestal: {},
	MovementHandheld: {},
	MovementGimbal:   {},
	MovementDrone:    {},
}

var cameraAngles = map[CameraAngle]struct{}{
	AngleEyeLevel: {},
	AngleLow:      {},
	AngleHigh:     {},
	AngleDutch:    {},
	AngleOverhead: {},
	AngleBirdsEye: {},
}

var visualStyles = map[VisualStyle]struct{}{
	StyleCinematic:   {},
	StyleDocumentary: {},
	StyleCommercial:  {},
	StyleMusicVideo:  {},
	StyleAnime:       {},
	StyleMinimalist:  {},
	StyleVintage:     {},
	StyleNoir:        {},
	StyleCyberpunk:   {},
}

var lightingTypes = map[LightingType]struct{}{
	LightingNatural:    {},
	LightingGoldenHour: {},
	LightingBlueHour:   {},
	LightingSoft:       {},
	LightingHard:       {},
	LightingNeon:       {},
	LightingStudio:     {},
	LightingDramatic:   {},
	LightingLowKey:     {},
	LightingHighKey:    {},
}

var aspectRatios = map[AspectRatio]struct{}{
	Aspect16x9: {},
	Aspect9x16: {},
	Aspect4x3:  {},
	Aspect3x4:  {},
	Aspect1x1:  {},
	Aspect21x9: {},
}

// Valid reports whether the value belongs to the closed vocabulary.
func (s ShotType) Valid() bool       { _, ok := shotTypes[s]; return ok }
func (m CameraMovement) Valid() bool { _, ok := cameraMovements[m]; return ok }
func (a CameraAngle) Valid() bool    { _, ok := cameraAngles[a]; return ok }
func (v VisualStyle) Valid() bool    { _, ok := visualStyles[v]; return ok }
func (l LightingType) Valid() bool   { _, ok := lightingTypes[l]; return ok }
func (r AspectRatio) Valid() bool    { _, ok := aspectRatios[r]; return ok }

// CameraConfig describes the camera setup of a generation request.
type CameraConfig struct {
	ShotType ShotType       `json:"shot_type"`
	Movement CameraMovement `json:"movement"`
	Angle    CameraAngle    `json:"angle"`
	Lens     string         `json:"lens,omitempty"`
}

// StyleConfig describes the visual treatment of a generation request.
type StyleConfig struct {
	Visual     VisualStyle  `json:"visual"`
	Lighting   LightingType `json:"lighting"`
	ColorGrade string       `json:"color_grade"`
	Quality    string       `json:"quality"`
	FilmStock  string       `json:"film_stock,omitempty"`
}

// PromptParams is the canonical parameter set shared by every video target.
// Once produced by Canonicalize it is fully populated: free-text fields are
// never empty and enum fields always hold a vocabulary value.
type PromptParams struct {
	Subject        string       `json:"subject"`
	Action         string       `json:"action"`
	Scene          string       `json:"scene"`
	Camera         CameraConfig `json:"camera"`
	Style          StyleConfig  `json:"style"`
	Audio          string       `json:"audio"`
	Duration       int          `json:"duration,omitempty"`
	AspectRatio    AspectRatio  `json:"aspect_ratio"`
	NegativePrompt string       `json:"negative_prompt,omitempty"`
}

// PartialParams carries the subset of canonical fields a metadata adapter can
// recover from a scraped video. Unset fields are defaulted by Canonicalize.
type PartialParams struct {
	Subject string
	Scene   string
	Audio   string
	Style   *StyleConfig
}

// ModelPrompts holds the rendered prompt per video target.
type ModelPrompts struct {
	Sora2     string `json:"sora2"`
	Veo3      string `json:"veo3"`
	Seedance2 string `json:"seedance2"`
}

// ImagePrompts holds the rendered prompt per image target.
type ImagePrompts struct {
	Midjourney      string `json:"midjourney"`
	StableDiffusion string `json:"stableDiffusion"`
	Dalle3          string `json:"dalle3"`
	Ideogram        string `json:"ideogram"`
	NanoBanana      string `json:"nanoBanana"`
}
