package script

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"ytembed/events"
)

// Reply decoders. The embedded runtime answers query invocations with plain
// strings; a reply of the wrong shape decodes to the zero value of the
// requested type rather than an error.

func DecodeFloat(reply string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
	if err != nil {
		return 0
	}
	return f
}

func DecodeInt(reply string) int {
	n, err := strconv.Atoi(strings.TrimSpace(reply))
	if err != nil {
		return 0
	}
	return n
}

func DecodeState(reply string) events.PlaybackState {
	return events.ParsePlaybackState(strings.TrimSpace(reply))
}

// DecodeURL parses a getVideoUrl reply. Empty or unparsable replies decode
// to nil.
func DecodeURL(reply string) *url.URL {
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil
	}
	u, err := url.Parse(reply)
	if err != nil {
		return nil
	}
	return u
}

// DecodeStringList parses a JSON array reply such as the stringified
// getPlaylist result. Malformed replies decode to nil.
func DecodeStringList(reply string) []string {
	var list []string
	if err := json.Unmarshal([]byte(reply), &list); err != nil {
		return nil
	}
	return list
}

// DecodeFloatList parses a JSON number-array reply such as the stringified
// getAvailablePlaybackRates result.
func DecodeFloatList(reply string) []float64 {
	var list []float64
	if err := json.Unmarshal([]byte(reply), &list); err != nil {
		return nil
	}
	return list
}
