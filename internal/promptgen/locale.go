package promptgen

import (
	"strings"

	"promptserver/internal/domain"
)

// phraseTable localizes enum values into the descriptive fragments the sora2
// grammar stitches together. Tables are keyed by the closed enum types so an
// unmapped variant cannot appear at runtime; a missing locale falls back to
// DefaultLocale.
type phraseTable struct {
	shots        map[domain.ShotType]string
	movements    map[domain.CameraMovement]string
	visuals      map[domain.VisualStyle]string
	lightings    map[domain.LightingType]string
	subjectScene string
	audioLabel   string
	join         string
}

// DefaultLocale is the language the original phrase catalog ships in.
const DefaultLocale = "zh"

var phraseTables = map[string]phraseTable{
	"zh": {
		shots: map[domain.ShotType]string{
			domain.ShotExtremeCloseUp: "超特写",
			domain.ShotCloseUp:        "特写",
			domain.ShotMedium:         "中景",
			domain.ShotLong:           "远景",
			domain.ShotExtremeLong:    "超远景",
			domain.ShotWide:           "广角",
		},
		movements: map[domain.CameraMovement]string{
			domain.MovementStatic:   "固定镜头",
			domain.MovementPan:      "摇镜头",
			domain.MovementTilt:     "俯仰",
			domain.MovementDollyIn:  "推进",
			domain.MovementDollyOut: "拉远",
			domain.MovementTruck:    "横移",
			domain.MovementPedestal: "升降",
			domain.MovementHandheld: "手持",
			domain.MovementGimbal:   "稳定器",
			domain.MovementDrone:    "无人机",
		},
		visuals: map[domain.VisualStyle]string{
			domain.StyleCinematic:   "电影感",
			domain.StyleDocumentary: "纪录片风格",
			domain.StyleCommercial:  "商业广告",
			domain.StyleMusicVideo:  "音乐MV风格",
			domain.StyleAnime:       "动画风格",
			domain.StyleMinimalist:  "极简主义",
			domain.StyleVintage:     "复古风格",
			domain.StyleNoir:        "黑色电影",
			domain.StyleCyberpunk:   "赛博朋克",
		},
		lightings: map[domain.LightingType]string{
			domain.LightingNatural:    "自然光",
			domain.LightingGoldenHour: "黄金时刻",
			domain.LightingBlueHour:   "蓝色时刻",
			domain.LightingSoft:       "柔光",
			domain.LightingHard:       "硬光",
			domain.LightingNeon:       "霓虹灯",
			domain.LightingStudio:     "影棚灯光",
			domain.LightingDramatic:   "戏剧性光影",
			domain.LightingLowKey:     "低调",
			domain.LightingHighKey:    "高调",
		},
		subjectScene: "%s在%s",
		audioLabel:   "音频: ",
		join:         "",
	},
	"en": {
		shots: map[domain.ShotType]string{
			domain.ShotExtremeCloseUp: "extreme close-up",
			domain.ShotCloseUp:        "close-up",
			domain.ShotMedium:         "medium shot",
			domain.ShotLong:           "long shot",
			domain.ShotExtremeLong:    "extreme long shot",
			domain.ShotWide:           "wide-angle shot",
		},
		movements: map[domain.CameraMovement]string{
			domain.MovementStatic:   "locked-off camera",
			domain.MovementPan:      "panning camera",
			domain.MovementTilt:     "tilting camera",
			domain.MovementDollyIn:  "dolly push-in",
			domain.MovementDollyOut: "dolly pull-out",
			domain.MovementTruck:    "trucking move",
			domain.MovementPedestal: "pedestal move",
			domain.MovementHandheld: "handheld camera",
			domain.MovementGimbal:   "gimbal glide",
			domain.MovementDrone:    "drone shot",
		},
		visuals: map[domain.VisualStyle]string{
			domain.StyleCinematic:   "cinematic look",
			domain.StyleDocumentary: "documentary style",
			domain.StyleCommercial:  "commercial polish",
			domain.StyleMusicVideo:  "music-video energy",
			domain.StyleAnime:       "anime style",
			domain.StyleMinimalist:  "minimalist style",
			domain.StyleVintage:     "vintage look",
			domain.StyleNoir:        "film noir mood",
			domain.StyleCyberpunk:   "cyberpunk aesthetic",
		},
		lightings: map[domain.LightingType]string{
			domain.LightingNatural:    "natural light",
			domain.LightingGoldenHour: "golden hour light",
			domain.LightingBlueHour:   "blue hour light",
			domain.LightingSoft:       "soft light",
			domain.LightingHard:       "hard light",
			domain.LightingNeon:       "neon glow",
			domain.LightingStudio:     "studio lighting",
			domain.LightingDramatic:   "dramatic lighting",
			domain.LightingLowKey:     "low-key lighting",
			domain.LightingHighKey:    "high-key lighting",
		},
		subjectScene: "%s in %s",
		audioLabel:   "audio: ",
		join:         ", ",
	},
}

func tableFor(locale string) phraseTable {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		locale = locale[:idx]
	}
	if t, ok := phraseTables[locale]; ok {
		return t
	}
	return phraseTables[DefaultLocale]
}
