package events

import (
	"net/url"
	"strconv"
	"strings"
)

// Scheme is the private URL scheme the embedded page navigates to as its
// only channel for asynchronous notifications back to the host.
const Scheme = "ytplayer"

// Wire callback names. These are the "host" segments of callback URLs and
// are matched case-sensitively.
const (
	CallbackOnReady                 = "onReady"
	CallbackOnStateChange           = "onStateChange"
	CallbackOnPlaybackQualityChange = "onPlaybackQualityChange"
	CallbackOnError                 = "onError"
	CallbackOnPlayTime              = "onPlayTime"
	CallbackOnAPIFailedToLoad       = "onYouTubeIframeAPIFailedToLoad"
)

// Kind identifies the typed notification decoded from a callback URL.
type Kind int

const (
	KindReady Kind = iota
	KindStateChange
	KindQualityChange
	KindError
	KindPlayTime
	KindAPILoadFailed
)

func (k Kind) String() string {
	switch k {
	case KindReady:
		return "ready"
	case KindStateChange:
		return "state_change"
	case KindQualityChange:
		return "quality_change"
	case KindError:
		return "error"
	case KindPlayTime:
		return "play_time"
	case KindAPILoadFailed:
		return "api_load_failed"
	default:
		return "invalid"
	}
}

var kindByCallback = map[string]Kind{
	CallbackOnReady:                 KindReady,
	CallbackOnStateChange:           KindStateChange,
	CallbackOnPlaybackQualityChange: KindQualityChange,
	CallbackOnError:                 KindError,
	CallbackOnPlayTime:              KindPlayTime,
	CallbackOnAPIFailedToLoad:       KindAPILoadFailed,
}

// Event is a single decoded notification from the embedded page. Exactly one
// of the typed fields is meaningful, selected by Kind; Data carries the raw
// wire payload for logging.
type Event struct {
	Kind    Kind
	State   PlaybackState
	Quality PlaybackQuality
	Error   PlayerError
	Seconds float64
	Data    string
}

// ParseCallbackURL decodes a ytplayer:// navigation into a typed Event.
// Unknown callback names return ok=false and are meant to be silently
// dropped by the caller. Malformed payloads never fail: state, quality and
// error decode to their unknown variants and play time decodes to zero.
func ParseCallbackURL(u *url.URL) (Event, bool) {
	if u == nil || u.Scheme != Scheme {
		return Event{}, false
	}
	kind, ok := kindByCallback[u.Host]
	if !ok {
		return Event{}, false
	}

	ev := Event{Kind: kind, Data: extractData(u.RawQuery)}
	switch kind {
	case KindStateChange:
		ev.State = ParsePlaybackState(ev.Data)
	case KindQualityChange:
		ev.Quality = ParsePlaybackQuality(ev.Data)
	case KindError:
		ev.Error = ParsePlayerError(ev.Data)
	case KindPlayTime:
		// Unparsable play time degrades to zero.
		ev.Seconds, _ = strconv.ParseFloat(ev.Data, 64)
	}
	return ev, true
}

// extractData pulls the payload out of a "data=<value>" query string by
// taking the substring after the last '='. A payload that itself contains
// '=' is truncated to its final segment. That matches the embedded page's
// convention exactly and is deliberately not a general query-string parser.
func extractData(query string) string {
	i := strings.LastIndex(query, "=")
	if i < 0 {
		return ""
	}
	return query[i+1:]
}
