// Package videometa resolves short-video share links into structured metadata
// that can seed prompt parameters.
package videometa

import (
	"regexp"

	"promptserver/internal/domain"
)

type platformPattern struct {
	platform domain.Platform
	pattern  *regexp.Regexp
}

// Ordered so douyin wins over tiktok for ambiguous hosts.
var platformPatterns = []platformPattern{
	{domain.PlatformDouyin, regexp.MustCompile(`(?i)douyin\.com|v\.douyin\.com`)},
	{domain.PlatformTikTok, regexp.MustCompile(`(?i)tiktok\.com|vm\.tiktok\.com|vt\.tiktok\.com`)},
	{domain.PlatformBilibili, regexp.MustCompile(`(?i)bilibili\.com|b23\.tv|bili\.2233\.cn`)},
	{domain.PlatformKuaishou, regexp.MustCompile(`(?i)kuaishou\.com|chenzhongtech\.com`)},
	{domain.PlatformXiaohongshu, regexp.MustCompile(`(?i)xiaohongshu\.com|xhslink\.com`)},
	{domain.PlatformWeibo, regexp.MustCompile(`(?i)weibo\.com|weibo\.cn|t\.cn`)},
}

// DetectPlatform matches the URL against known platform hosts. Unmatched URLs
// report PlatformUnknown.
func DetectPlatform(rawURL string) domain.Platform {
	for _, entry := range platformPatterns {
		if entry.pattern.MatchString(rawURL) {
			return entry.platform
		}
	}
	return domain.PlatformUnknown
}

var platformNames = map[domain.Platform]string{
	domain.PlatformDouyin:      "抖音",
	domain.PlatformTikTok:      "TikTok",
	domain.PlatformBilibili:    "哔哩哔哩",
	domain.PlatformKuaishou:    "快手",
	domain.PlatformXiaohongshu: "小红书",
	domain.PlatformWeibo:       "微博",
	domain.PlatformUnknown:     "未知平台",
}

func PlatformName(platform domain.Platform) string {
	if name, ok := platformNames[platform]; ok {
		return name
	}
	return platformNames[domain.PlatformUnknown]
}

// PlatformInfo is the catalog entry served by the platform listing endpoint.
type PlatformInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	URLPattern string `json:"urlPattern"`
}

func SupportedPlatforms() []PlatformInfo {
	return []PlatformInfo{
		{ID: string(domain.PlatformDouyin), Name: "抖音", URLPattern: "v.douyin.com"},
		{ID: string(domain.PlatformTikTok), Name: "TikTok", URLPattern: "tiktok.com"},
		{ID: string(domain.PlatformBilibili), Name: "哔哩哔哩", URLPattern: "bilibili.com / b23.tv"},
		{ID: string(domain.PlatformKuaishou), Name: "快手", URLPattern: "kuaishou.com"},
		{ID: string(domain.PlatformXiaohongshu), Name: "小红书", URLPattern: "xiaohongshu.com"},
		{ID: string(domain.PlatformWeibo), Name: "微博", URLPattern: "weibo.com"},
	}
}
