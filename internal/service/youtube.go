package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"podcastflow-backend/internal/config"
	apperrors "podcastflow-backend/internal/errors"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// videosPerRequest is the API's maximum number of IDs per videos.list call
const videosPerRequest = 50

// VideoStats holds the public statistics of one YouTube video
type VideoStats struct {
	VideoID  string
	Views    int64
	Likes    int64
	Comments int64
}

// youtubeVideosAPIResponse represents the videos.list API response. Counts
// come back as decimal strings.
type youtubeVideosAPIResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type youtubeErrorAPIResponse struct {
	Error struct {
		Code   int    `json:"code"`
		Errors []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

// YouTubeService fetches video statistics from the YouTube Data API v3
type YouTubeService struct {
	cfg        *config.Config
	httpClient *http.Client
}

// NewYouTubeService creates a new YouTube service
func NewYouTubeService(cfg *config.Config) *YouTubeService {
	return &YouTubeService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// GetVideoStats fetches statistics for the given video IDs, batching requests
// at the API limit. Unknown IDs are silently absent from the result.
func (s *YouTubeService) GetVideoStats(ctx context.Context, videoIDs []string) (map[string]VideoStats, error) {
	if s.cfg.YouTubeAPIKey == "" {
		return nil, apperrors.ErrYouTubeNotConfigured
	}

	out := make(map[string]VideoStats, len(videoIDs))
	for start := 0; start < len(videoIDs); start += videosPerRequest {
		end := start + videosPerRequest
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		if err := s.fetchBatch(ctx, videoIDs[start:end], out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *YouTubeService) fetchBatch(ctx context.Context, ids []string, out map[string]VideoStats) error {
	v := url.Values{}
	v.Set("part", "statistics")
	v.Set("id", strings.Join(ids, ","))
	v.Set("key", s.cfg.YouTubeAPIKey)
	reqURL := youtubeAPIBase + "/videos?" + v.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build youtube request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read youtube response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr youtubeErrorAPIResponse
		if json.Unmarshal(body, &apiErr) == nil {
			for _, e := range apiErr.Error.Errors {
				if e.Reason == "quotaExceeded" || e.Reason == "rateLimitExceeded" {
					return apperrors.ErrYouTubeQuotaExceeded
				}
			}
		}
		return fmt.Errorf("youtube API returned status %d", resp.StatusCode)
	}

	var parsed youtubeVideosAPIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("failed to parse youtube response: %w", err)
	}

	for _, item := range parsed.Items {
		out[item.ID] = VideoStats{
			VideoID:  item.ID,
			Views:    parseCount(item.Statistics.ViewCount),
			Likes:    parseCount(item.Statistics.LikeCount),
			Comments: parseCount(item.Statistics.CommentCount),
		}
	}
	return nil
}

// parseCount parses a decimal count string, treating missing or malformed
// values as zero. Likes and comments are absent when the channel hides them.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
