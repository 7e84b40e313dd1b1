package events

import "strconv"

// PlaybackState is the lifecycle stage reported by the embedded player.
// The integer values are the iframe API's wire codes and must never be
// renumbered.
type PlaybackState int

const (
	StateUnstarted PlaybackState = -1
	StateEnded     PlaybackState = 0
	StatePlaying   PlaybackState = 1
	StatePaused    PlaybackState = 2
	StateBuffering PlaybackState = 3
	StateQueued    PlaybackState = 5

	// StateUnknown is the fallback for any unrecognized code. It is a
	// host-side value only and never appears on the wire.
	StateUnknown PlaybackState = -99
)

func (s PlaybackState) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateEnded:
		return "ended"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateBuffering:
		return "buffering"
	case StateQueued:
		return "queued"
	default:
		return "unknown"
	}
}

// ParsePlaybackState maps a wire payload to a PlaybackState. Anything that
// is not one of the known integer codes comes back as StateUnknown.
func ParsePlaybackState(payload string) PlaybackState {
	code, err := strconv.Atoi(payload)
	if err != nil {
		return StateUnknown
	}
	switch PlaybackState(code) {
	case StateUnstarted, StateEnded, StatePlaying, StatePaused, StateBuffering, StateQueued:
		return PlaybackState(code)
	default:
		return StateUnknown
	}
}

// PlaybackQuality is the resolution tier reported by the embedded player,
// identified by the iframe API's lowercase string tokens.
type PlaybackQuality string

const (
	QualitySmall   PlaybackQuality = "small"
	QualityMedium  PlaybackQuality = "medium"
	QualityLarge   PlaybackQuality = "large"
	QualityHD720   PlaybackQuality = "hd720"
	QualityHD1080  PlaybackQuality = "hd1080"
	QualityHighRes PlaybackQuality = "highres"
	QualityAuto    PlaybackQuality = "auto"
	QualityDefault PlaybackQuality = "default"
	QualityUnknown PlaybackQuality = "unknown"
)

// ParsePlaybackQuality matches a wire token case-sensitively against the
// known quality tiers; unrecognized tokens come back as QualityUnknown.
func ParsePlaybackQuality(payload string) PlaybackQuality {
	switch PlaybackQuality(payload) {
	case QualitySmall, QualityMedium, QualityLarge, QualityHD720, QualityHD1080,
		QualityHighRes, QualityAuto, QualityDefault:
		return PlaybackQuality(payload)
	default:
		return QualityUnknown
	}
}

// PlayerError is a failure reported by the embedded player.
type PlayerError int

const (
	ErrorInvalidParam PlayerError = iota
	ErrorHTML5
	ErrorVideoNotFound
	ErrorNotEmbeddable
	ErrorUnknown
)

func (e PlayerError) String() string {
	switch e {
	case ErrorInvalidParam:
		return "invalid parameter"
	case ErrorHTML5:
		return "HTML5 error"
	case ErrorVideoNotFound:
		return "video not found"
	case ErrorNotEmbeddable:
		return "not embeddable"
	default:
		return "unknown"
	}
}

// ParsePlayerError maps a wire error code to a PlayerError. Codes 100 and
// 105 both collapse to ErrorVideoNotFound and 101 and 150 both collapse to
// ErrorNotEmbeddable; the fine-grained code is discarded. Anything else,
// including non-numeric payloads, comes back as ErrorUnknown.
func ParsePlayerError(payload string) PlayerError {
	switch payload {
	case "2":
		return ErrorInvalidParam
	case "5":
		return ErrorHTML5
	case "100", "105":
		return ErrorVideoNotFound
	case "101", "150":
		return ErrorNotEmbeddable
	default:
		return ErrorUnknown
	}
}
