package youtube

import (
	"context"
	"fmt"
	"html"
	"net/url"
	"path"
	"strings"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"ytembed/config"
)

type VideoResponse struct {
	Title   string `json:"title"`
	VideoID string `json:"video_id"`
}

// URLResult holds the ids extracted from a pasted YouTube URL. Either field
// may be empty.
type URLResult struct {
	VideoID    string
	PlaylistID string
}

// ParseURL extracts video/playlist ids from watch, short-link and shorts
// URLs. Non-YouTube or malformed URLs yield an empty result.
func ParseURL(raw string) URLResult {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return URLResult{}
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case host == "www.youtube.com" || host == "youtube.com" || host == "m.youtube.com":
		q := parsed.Query()
		result := URLResult{VideoID: q.Get("v"), PlaylistID: q.Get("list")}
		if result.VideoID == "" && strings.HasPrefix(strings.ToLower(parsed.Path), "/shorts/") {
			result.VideoID = path.Base(parsed.Path)
		}
		return result
	case host == "youtu.be":
		id := strings.Trim(path.Base(parsed.Path), "/")
		if id == "" || id == "." {
			return URLResult{}
		}
		return URLResult{VideoID: id, PlaylistID: parsed.Query().Get("list")}
	}

	return URLResult{}
}

// GetVideoByID looks up a video title through the Data API. Requires
// YOUTUBE_API_KEY; the harness treats failures as non-fatal and falls back
// to the bare id.
func GetVideoByID(videoID string) (VideoResponse, error) {
	logger := log.WithFields(log.Fields{"module": "youtube"})

	apiKey := config.Config.Youtube.APIKey
	service, err := ytapi.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		logger.Errorf("error creating YouTube client: %v", err)
		sentry.CaptureException(err)
		return VideoResponse{}, fmt.Errorf("error creating YouTube client: %w", err)
	}

	call := service.Videos.List([]string{"snippet"}).Id(videoID)
	response, err := call.Do()
	if err != nil {
		logger.Errorf("error querying YouTube: %v", err)
		sentry.CaptureException(err)
		return VideoResponse{}, fmt.Errorf("error querying YouTube: %w", err)
	}

	if len(response.Items) == 0 {
		return VideoResponse{}, fmt.Errorf("no video found for id %q", videoID)
	}

	logger.Tracef("video found: %v", response.Items[0].Snippet.Title)
	return VideoResponse{
		Title:   html.UnescapeString(response.Items[0].Snippet.Title),
		VideoID: videoID,
	}, nil
}
