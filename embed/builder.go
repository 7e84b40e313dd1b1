// Package embed assembles the HTML page that hosts the YouTube iframe
// player inside an embedding surface, together with the trusted origin the
// page is associated with.
package embed

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// Page is the result of a build: the content to hand to the embedding
// surface and the trusted origin derived from the player vars. The origin is
// fixed for the lifetime of the loaded page; a new load replaces both.
type Page struct {
	HTML   string
	Origin *url.URL
}

// The events map registered with the iframe player. The names on the left
// are the iframe API's event hooks; the values are the page-side handler
// functions, which forward to the ytplayer:// callback channel. Note that
// onError registers the handler onPlayerError — the wire callback stays
// onError, the asymmetry is the iframe page's convention.
var callbackBindings = map[string]string{
	"onReady":                 "onReady",
	"onStateChange":           "onStateChange",
	"onPlaybackQualityChange": "onPlaybackQualityChange",
	"onError":                 "onPlayerError",
	"onPlayTime":              "onPlayTime",
}

// ForVideo builds the embed page for a single video id. playerVars is the
// caller's free-form player option bag and may be nil.
func ForVideo(videoID string, playerVars map[string]any) (*Page, error) {
	return ForParams(map[string]any{
		"videoId":    videoID,
		"playerVars": copyVars(playerVars),
	})
}

// ForPlaylist builds the embed page for a playlist id. listType and list
// are injected into the player vars, overriding any caller-supplied values.
func ForPlaylist(playlistID string, playerVars map[string]any) (*Page, error) {
	vars := copyVars(playerVars)
	vars["listType"] = "playlist"
	vars["list"] = playlistID
	return ForParams(map[string]any{"playerVars": vars})
}

// ForParams builds the embed page from a raw parameter bag. Width and
// height default to fill-parent unless the caller supplied them, the fixed
// callback bindings always overwrite any caller-supplied events map, and the
// trusted origin comes from the player vars' origin key (blank when absent).
// A bag that cannot be JSON-encoded or an unparsable origin fails the build;
// nothing is replaced on failure.
func ForParams(params map[string]any) (*Page, error) {
	merged := make(map[string]any, len(params)+3)
	for k, v := range params {
		merged[k] = v
	}
	if _, ok := merged["height"]; !ok {
		merged["height"] = "100%"
	}
	if _, ok := merged["width"]; !ok {
		merged["width"] = "100%"
	}
	merged["events"] = callbackBindings

	vars, _ := merged["playerVars"].(map[string]any)
	if vars == nil {
		vars = map[string]any{}
		merged["playerVars"] = vars
	}

	origin := &url.URL{}
	if raw, ok := vars["origin"].(string); ok {
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse origin %q: %w", raw, err)
		}
		origin = parsed
	}

	blob, err := json.MarshalIndent(merged, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode player params: %w", err)
	}

	log.WithFields(log.Fields{"module": "embed"}).
		Debugf("built embed page, origin=%q", origin.String())

	return &Page{
		HTML:   fmt.Sprintf(pageTemplate, blob),
		Origin: origin,
	}, nil
}

// ExtractIframeSrc pulls the iframe src attribute out of an embed-code
// snippet such as a getVideoEmbedCode reply.
func ExtractIframeSrc(embedCode string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(embedCode))
	if err != nil {
		return "", fmt.Errorf("parse embed code: %w", err)
	}
	src, ok := doc.Find("iframe").First().Attr("src")
	if !ok {
		return "", fmt.Errorf("no iframe in embed code")
	}
	return src, nil
}

func copyVars(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars)+2)
	for k, v := range vars {
		out[k] = v
	}
	return out
}
