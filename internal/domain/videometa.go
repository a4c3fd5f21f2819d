package domain

// Platform identifies the social-video platform a URL belongs to.
type Platform string

const (
	PlatformDouyin      Platform = "douyin"
	PlatformTikTok      Platform = "tiktok"
	PlatformBilibili    Platform = "bilibili"
	PlatformKuaishou    Platform = "kuaishou"
	PlatformXiaohongshu Platform = "xiaohongshu"
	PlatformWeibo       Platform = "weibo"
	PlatformUnknown     Platform = "unknown"
)

// VideoAuthor describes the creator of a scraped video.
type VideoAuthor struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// VideoMusic describes the soundtrack attached to a scraped video.
type VideoMusic struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// VideoMetadata is the record a metadata provider returns for a platform URL.
// Fields beyond Platform and VideoID are best effort.
type VideoMetadata struct {
	Platform    Platform    `json:"platform"`
	VideoID     string      `json:"video_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Author      VideoAuthor `json:"author"`
	Cover       string      `json:"cover"`
	VideoURL    string      `json:"video_url,omitempty"`
	Duration    float64     `json:"duration,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Music       *VideoMusic `json:"music,omitempty"`
}
