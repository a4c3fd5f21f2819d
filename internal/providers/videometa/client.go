package videometa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"promptserver/internal/domain"
)

// Fetcher resolves a share URL into video metadata.
type Fetcher interface {
	FetchVideo(ctx context.Context, rawURL string) (*domain.VideoMetadata, error)
}

type Options struct {
	DouyinAPIBase   string
	BilibiliAPIBase string
	HTTPClient      *http.Client
}

// Client resolves douyin and bilibili links through their public endpoints and
// returns skeleton metadata for platforms without a resolver.
type Client struct {
	douyinAPIBase   string
	bilibiliAPIBase string
	httpClient      *http.Client
}

const (
	fetchTimeout = 10 * time.Second
	mobileUA     = "Mozilla/5.0 (iPhone; CPU iPhone OS 13_0 like Mac OS X) AppleWebKit/605.1.15"
	desktopUA    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var (
	douyinVideoIDPattern = regexp.MustCompile(`/video/(\d+)`)
	douyinModalIDPattern = regexp.MustCompile(`[?&]modal_id=(\d+)`)
	bilibiliAVPattern    = regexp.MustCompile(`(?i)av(\d+)`)
	bilibiliBVPattern    = regexp.MustCompile(`BV([a-zA-Z0-9]+)`)
)

func NewClient(opts Options) *Client {
	douyinBase := strings.TrimRight(opts.DouyinAPIBase, "/")
	if douyinBase == "" {
		douyinBase = "https://api.douyin.wtf/api/v1/aweme"
	}
	bilibiliBase := strings.TrimRight(opts.BilibiliAPIBase, "/")
	if bilibiliBase == "" {
		bilibiliBase = "https://api.bilibili.com/x/web-interface/view"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Client{
		douyinAPIBase:   douyinBase,
		bilibiliAPIBase: bilibiliBase,
		httpClient:      client,
	}
}

func (c *Client) FetchVideo(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	platform := DetectPlatform(rawURL)
	switch platform {
	case domain.PlatformDouyin:
		return c.fetchDouyin(ctx, rawURL)
	case domain.PlatformBilibili:
		return c.fetchBilibili(ctx, rawURL)
	case domain.PlatformTikTok, domain.PlatformKuaishou, domain.PlatformXiaohongshu, domain.PlatformWeibo:
		return &domain.VideoMetadata{
			Platform:    platform,
			Description: "该平台解析功能开发中，请手动输入描述",
		}, nil
	default:
		return nil, domain.ErrUnsupportedPlatform
	}
}

type douyinDetailResponse struct {
	AwemeDetail *struct {
		Desc   string `json:"desc"`
		Author struct {
			Nickname    string `json:"nickname"`
			AvatarThumb struct {
				URLList []string `json:"url_list"`
			} `json:"avatar_thumb"`
		} `json:"author"`
		Video struct {
			Cover struct {
				URLList []string `json:"url_list"`
			} `json:"cover"`
			PlayAddr struct {
				URLList []string `json:"url_list"`
			} `json:"play_addr"`
			Duration float64 `json:"duration"`
		} `json:"video"`
		TextExtra []struct {
			HashtagName string `json:"hashtag_name"`
		} `json:"text_extra"`
		Music *struct {
			Title  string `json:"title"`
			Author string `json:"author"`
		} `json:"music"`
	} `json:"aweme_detail"`
}

func (c *Client) fetchDouyin(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	videoID, err := c.resolveDouyinVideoID(ctx, rawURL)
	if err != nil || videoID == "" {
		return nil, fmt.Errorf("videometa: resolve douyin id: %w", domain.ErrNotFound)
	}
	meta := &domain.VideoMetadata{
		Platform: domain.PlatformDouyin,
		VideoID:  videoID,
	}
	apiURL := fmt.Sprintf("%s?aweme_id=%s", c.douyinAPIBase, videoID)
	var out douyinDetailResponse
	if err := c.getJSON(ctx, apiURL, mobileUA, "", &out); err != nil || out.AwemeDetail == nil {
		// Detail API is best effort: the ID alone still lets callers type a
		// description by hand.
		return meta, nil
	}
	detail := out.AwemeDetail
	meta.Title = detail.Desc
	meta.Description = detail.Desc
	meta.Author.Name = detail.Author.Nickname
	meta.Author.Avatar = firstString(detail.Author.AvatarThumb.URLList)
	meta.Cover = firstString(detail.Video.Cover.URLList)
	meta.VideoURL = firstString(detail.Video.PlayAddr.URLList)
	meta.Duration = detail.Video.Duration / 1000
	for _, extra := range detail.TextExtra {
		if extra.HashtagName != "" {
			meta.Tags = append(meta.Tags, extra.HashtagName)
		}
	}
	if detail.Music != nil {
		meta.Music = &domain.VideoMusic{
			Title:  detail.Music.Title,
			Author: detail.Music.Author,
		}
	}
	return meta, nil
}

func (c *Client) resolveDouyinVideoID(ctx context.Context, rawURL string) (string, error) {
	finalURL, err := c.resolveRedirect(ctx, rawURL, mobileUA)
	if err != nil {
		return "", err
	}
	if m := douyinVideoIDPattern.FindStringSubmatch(finalURL); m != nil {
		return m[1], nil
	}
	if m := douyinModalIDPattern.FindStringSubmatch(finalURL); m != nil {
		return m[1], nil
	}
	return "", nil
}

type bilibiliViewResponse struct {
	Code int `json:"code"`
	Data *struct {
		Title string `json:"title"`
		Desc  string `json:"desc"`
		Owner struct {
			Name string `json:"name"`
			Face string `json:"face"`
		} `json:"owner"`
		Pic      string  `json:"pic"`
		Duration float64 `json:"duration"`
		Tag      string  `json:"tag"`
	} `json:"data"`
}

func (c *Client) fetchBilibili(ctx context.Context, rawURL string) (*domain.VideoMetadata, error) {
	finalURL := rawURL
	if strings.Contains(rawURL, "b23.tv") || strings.Contains(rawURL, "bili.2233.cn") {
		resolved, err := c.resolveRedirect(ctx, rawURL, desktopUA)
		if err == nil && resolved != "" {
			finalURL = resolved
		}
	}
	aid := ""
	query := ""
	if m := bilibiliAVPattern.FindStringSubmatch(finalURL); m != nil {
		aid = m[1]
		query = "aid=" + m[1]
	} else if m := bilibiliBVPattern.FindStringSubmatch(finalURL); m != nil {
		aid = "BV" + m[1]
		query = "bvid=BV" + m[1]
	}
	if aid == "" {
		return nil, fmt.Errorf("videometa: resolve bilibili id: %w", domain.ErrNotFound)
	}
	meta := &domain.VideoMetadata{
		Platform: domain.PlatformBilibili,
		VideoID:  aid,
	}
	apiURL := fmt.Sprintf("%s?%s", c.bilibiliAPIBase, query)
	var out bilibiliViewResponse
	if err := c.getJSON(ctx, apiURL, desktopUA, "https://www.bilibili.com", &out); err != nil || out.Code != 0 || out.Data == nil {
		return meta, nil
	}
	video := out.Data
	meta.Title = video.Title
	meta.Description = video.Desc
	meta.Author.Name = video.Owner.Name
	meta.Author.Avatar = video.Owner.Face
	meta.Cover = video.Pic
	meta.Duration = video.Duration
	if video.Tag != "" {
		meta.Tags = strings.Split(video.Tag, ",")
	}
	return meta, nil
}

func (c *Client) resolveRedirect(ctx context.Context, rawURL, userAgent string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String(), nil
	}
	return rawURL, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL, userAgent, referer string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("videometa: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func firstString(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

var _ Fetcher = (*Client)(nil)
