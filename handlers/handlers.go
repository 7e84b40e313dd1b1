// Package handlers wires the bridge into a gin harness so the embed pages
// and the callback channel can be exercised from a normal browser during
// development. Real hosts intercept ytplayer:// navigations inside their
// embedding surface; here the page's callbacks are forwarded to /callback
// instead.
package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ytembed/config"
	"ytembed/embed"
	"ytembed/events"
	"ytembed/history"
	"ytembed/navigation"
	"ytembed/pages"
	"ytembed/youtube"
)

type Manager struct {
	store  *history.Store
	origin *url.URL
	logger *log.Entry
}

// NewManager builds the harness around a history store. The trusted origin
// for served pages comes from config.
func NewManager(store *history.Store) (*Manager, error) {
	origin, err := url.Parse(config.Config.Options.DefaultOrigin)
	if err != nil {
		return nil, fmt.Errorf("parse default origin: %w", err)
	}
	return &Manager{
		store:  store,
		origin: origin,
		logger: log.WithFields(log.Fields{"module": "handlers"}),
	}, nil
}

func (m *Manager) Register(router *gin.Engine) {
	router.GET("/", m.Index)
	router.GET("/embed/video/:videoId", m.EmbedVideo)
	router.GET("/embed/playlist/:playlistId", m.EmbedPlaylist)
	router.GET("/callback", m.Callback)
	router.GET("/history", m.History)
	router.GET("/resolve", m.Resolve)
}

func (m *Manager) Index(c *gin.Context) {
	var items strings.Builder
	records, err := m.store.Recent(config.Config.Options.HistoryLimit)
	if err != nil {
		m.logger.Warnf("history unavailable: %v", err)
	}
	for _, r := range records {
		title := r.Title
		if title == "" {
			title = r.VideoID
		}
		fmt.Fprintf(&items, `<li><a href="/embed/video/%s">%s</a></li>`,
			url.PathEscape(r.VideoID), title)
	}
	if items.Len() == 0 {
		items.WriteString("<li>none yet</li>")
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fmt.Sprintf(pages.Index, items.String())))
}

// EmbedVideo serves the generated embed page for one video. Query params
// are passed through as player vars; origin defaults to the configured one.
func (m *Manager) EmbedVideo(c *gin.Context) {
	videoID := c.Param("videoId")

	vars := playerVarsFromQuery(c)
	page, err := embed.ForVideo(videoID, vars)
	if err != nil {
		m.logger.Errorf("embed build failed for %q: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build embed page"})
		return
	}

	m.recordLoad(videoID, page.Origin)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page.HTML))
}

func (m *Manager) EmbedPlaylist(c *gin.Context) {
	playlistID := c.Param("playlistId")

	page, err := embed.ForPlaylist(playlistID, playerVarsFromQuery(c))
	if err != nil {
		m.logger.Errorf("embed build failed for playlist %q: %v", playlistID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build embed page"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page.HTML))
}

// Callback accepts a forwarded navigation URL, classifies it against the
// harness origin and decodes it when it is a callback. The response shows
// what a real host would have seen.
func (m *Manager) Callback(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url parameter"})
		return
	}

	decision := navigation.ClassifyString(raw, m.origin)
	response := gin.H{"decision": decision.String()}

	if decision == navigation.InterceptAsCallback {
		target, err := url.Parse(raw)
		if err == nil {
			if ev, ok := events.ParseCallbackURL(target); ok {
				m.logger.Infof("callback %s data=%q", ev.Kind, ev.Data)
				response["event"] = describeEvent(ev)
			} else {
				response["event"] = nil
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

func (m *Manager) History(c *gin.Context) {
	records, err := m.store.Recent(config.Config.Options.HistoryLimit)
	if err != nil {
		m.logger.Errorf("history query failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loads": records})
}

// Resolve extracts ids from a pasted YouTube URL so harness users can jump
// from a watch link to the embed page.
func (m *Manager) Resolve(c *gin.Context) {
	raw := c.Query("url")
	result := youtube.ParseURL(raw)
	if result.VideoID == "" && result.PlaylistID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a recognizable YouTube URL"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"video_id":    result.VideoID,
		"playlist_id": result.PlaylistID,
	})
}

func (m *Manager) recordLoad(videoID string, origin *url.URL) {
	title := ""
	if config.Config.Youtube.IsEnabled() {
		if video, err := youtube.GetVideoByID(videoID); err == nil {
			title = video.Title
		}
	}
	originStr := ""
	if origin != nil {
		originStr = origin.String()
	}
	if err := m.store.Record(videoID, title, originStr); err != nil {
		m.logger.Warnf("failed to record load: %v", err)
	}
}

// playerVarsFromQuery turns harness query params into a player var bag,
// injecting the configured origin unless the caller set one.
func playerVarsFromQuery(c *gin.Context) map[string]any {
	vars := map[string]any{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			vars[key] = values[0]
		}
	}
	if _, ok := vars["origin"]; !ok {
		vars["origin"] = config.Config.Options.DefaultOrigin
	}
	return vars
}

func describeEvent(ev events.Event) gin.H {
	out := gin.H{"kind": ev.Kind.String(), "data": ev.Data}
	switch ev.Kind {
	case events.KindStateChange:
		out["state"] = ev.State.String()
	case events.KindQualityChange:
		out["quality"] = string(ev.Quality)
	case events.KindError:
		out["error"] = ev.Error.String()
	case events.KindPlayTime:
		out["seconds"] = ev.Seconds
	}
	return out
}
