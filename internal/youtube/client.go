// Package youtube wraps the YouTube Data API v3 for music search and lookup.
//
// The client holds an ordered pool of API keys and a rotation cursor. A search
// failure advances the cursor (mod pool size) so the next call uses the next
// key; the failing request itself is never retried. Detail and related lookups
// swallow provider errors instead and leave the cursor alone.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	defaultBaseURL  = "https://www.googleapis.com/youtube/v3"
	musicCategoryID = "10"
)

// ErrUpstream classifies any video-provider failure surfaced to callers.
var ErrUpstream = errors.New("video provider error")

// Video is a provider video record.
type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	ChannelTitle string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail_url"`
	Duration     string `json:"duration"`
	ViewCount    int64  `json:"view_count"`
	PublishedAt  string `json:"published_at"`
}

// Client calls the video provider with a rotating key pool. The cursor is
// process-wide mutable state; concurrent rotations may race, which is
// acceptable since modulo selection always lands on a valid index.
type Client struct {
	keys       []string
	cursor     atomic.Int64
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client over the given ordered key pool.
func NewClient(keys []string, logger *slog.Logger) (*Client, error) {
	if len(keys) == 0 {
		return nil, errors.New("youtube: empty API key pool")
	}
	return &Client{
		keys:       keys,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     logger,
	}, nil
}

func (c *Client) currentKey() string {
	return c.keys[int(c.cursor.Load())%len(c.keys)]
}

func (c *Client) rotateKey() {
	next := c.cursor.Add(1)
	c.logger.Info("rotated video API key", "index", int(next)%len(c.keys))
}

type snippet struct {
	Title        string `json:"title"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	Thumbnails   struct {
		High struct {
			URL string `json:"url"`
		} `json:"high"`
	} `json:"thumbnails"`
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID             string  `json:"id"`
		Snippet        snippet `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values, result any) error {
	params.Set("key", c.currentKey())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, errResp.Error.Message)
		}
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}

// SearchMusic searches the provider's music category for query and returns up
// to maxResults candidates in the provider's relevance order, merged with
// duration/view-count/publish-date from a second batched lookup. Any provider
// error rotates the key and propagates; the request is not retried.
func (c *Client) SearchMusic(ctx context.Context, query string, maxResults int) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query+" official music video")
	params.Set("type", "video")
	params.Set("videoCategoryId", musicCategoryID)
	params.Set("order", "relevance")
	params.Set("maxResults", strconv.Itoa(maxResults))

	var sr searchResponse
	if err := c.get(ctx, "/search", params, &sr); err != nil {
		c.logger.Error("video search failed", "error", err)
		c.rotateKey()
		return nil, err
	}

	ids := make([]string, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}
	if len(ids) == 0 {
		return []Video{}, nil
	}

	details := url.Values{}
	details.Set("part", "snippet,contentDetails,statistics")
	details.Set("id", strings.Join(ids, ","))

	var vr videosResponse
	if err := c.get(ctx, "/videos", details, &vr); err != nil {
		c.logger.Error("video details batch failed", "error", err)
		c.rotateKey()
		return nil, err
	}

	videos := make([]Video, 0, len(vr.Items))
	for _, item := range vr.Items {
		views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
		videos = append(videos, Video{
			VideoID:      item.ID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			Duration:     item.ContentDetails.Duration,
			ViewCount:    views,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}

// VideoDetails looks up a single video. Provider errors are swallowed and
// reported as not found; the key pool is not rotated.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", videoID)

	var vr videosResponse
	if err := c.get(ctx, "/videos", params, &vr); err != nil {
		c.logger.Error("video details failed", "video_id", videoID, "error", err)
		return nil, nil
	}
	if len(vr.Items) == 0 {
		return nil, nil
	}

	item := vr.Items[0]
	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)
	return &Video{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelTitle: item.Snippet.ChannelTitle,
		ThumbnailURL: item.Snippet.Thumbnails.High.URL,
		Duration:     item.ContentDetails.Duration,
		ViewCount:    views,
		PublishedAt:  item.Snippet.PublishedAt,
	}, nil
}

// Related returns videos related to videoID. The duration field is left empty
// since this provider call does not include it. Provider errors are swallowed
// and reported as an empty list; the key pool is not rotated.
func (c *Client) Related(ctx context.Context, videoID string, maxResults int) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("relatedToVideoId", videoID)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))

	var sr searchResponse
	if err := c.get(ctx, "/search", params, &sr); err != nil {
		c.logger.Error("related videos failed", "video_id", videoID, "error", err)
		return []Video{}, nil
	}

	videos := make([]Video, 0, len(sr.Items))
	for _, item := range sr.Items {
		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: item.Snippet.Thumbnails.High.URL,
			PublishedAt:  item.Snippet.PublishedAt,
		})
	}
	return videos, nil
}
