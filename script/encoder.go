// Package script builds the JavaScript invocation strings submitted to the
// embedded page's `player` object, and decodes the string replies that come
// back from query invocations.
package script

import (
	"fmt"
	"strconv"
	"strings"
)

// VideoArgs selects a single video for the cue/load object-literal commands.
// EndSeconds of zero means play through to the end.
type VideoArgs struct {
	VideoID      string
	StartSeconds float64
	EndSeconds   float64
}

func Play() string { return "player.playVideo();" }

func Pause() string { return "player.pauseVideo();" }

func Stop() string { return "player.stopVideo();" }

func SeekTo(seconds float64, allowSeekAhead bool) string {
	return fmt.Sprintf("player.seekTo(%s, %t);", num(seconds), allowSeekAhead)
}

func CueVideo(a VideoArgs) string {
	return fmt.Sprintf("player.cueVideoById(%s);", videoObject(a))
}

func LoadVideo(a VideoArgs) string {
	return fmt.Sprintf("player.loadVideoById(%s);", videoObject(a))
}

func CueVideoByURL(videoURL string, startSeconds float64) string {
	return fmt.Sprintf("player.cueVideoByUrl(%s, %s);", quote(videoURL), num(startSeconds))
}

func LoadVideoByURL(videoURL string, startSeconds float64) string {
	return fmt.Sprintf("player.loadVideoByUrl(%s, %s);", quote(videoURL), num(startSeconds))
}

func CuePlaylist(playlistID string, index int, startSeconds float64) string {
	return fmt.Sprintf("player.cuePlaylist(%s, %d, %s);", quote(playlistID), index, num(startSeconds))
}

func LoadPlaylist(playlistID string, index int, startSeconds float64) string {
	return fmt.Sprintf("player.loadPlaylist(%s, %d, %s);", quote(playlistID), index, num(startSeconds))
}

func CuePlaylistVideos(videoIDs []string, index int, startSeconds float64) string {
	return fmt.Sprintf("player.cuePlaylist(%s, %d, %s);", videoList(videoIDs), index, num(startSeconds))
}

func LoadPlaylistVideos(videoIDs []string, index int, startSeconds float64) string {
	return fmt.Sprintf("player.loadPlaylist(%s, %d, %s);", videoList(videoIDs), index, num(startSeconds))
}

func SetPlaybackRate(rate float64) string {
	return fmt.Sprintf("player.setPlaybackRate(%s);", num(rate))
}

func SetLoop(loop bool) string {
	return fmt.Sprintf("player.setLoop(%t);", loop)
}

func SetShuffle(shuffle bool) string {
	return fmt.Sprintf("player.setShuffle(%t);", shuffle)
}

func NextVideo() string { return "player.nextVideo();" }

func PreviousVideo() string { return "player.previousVideo();" }

func PlayVideoAt(index int) string {
	return fmt.Sprintf("player.playVideoAt(%d);", index)
}

func Mute() string { return "player.mute();" }

func Unmute() string { return "player.unMute();" }

// Query invocations. Replies arrive as strings from the embedded runtime and
// are decoded with the Decode* helpers.

func CurrentTime() string { return "player.getCurrentTime();" }

func Duration() string { return "player.getDuration();" }

func PlayerState() string { return "player.getPlayerState();" }

func PlaybackRate() string { return "player.getPlaybackRate();" }

func VideoLoadedFraction() string { return "player.getVideoLoadedFraction();" }

func VideoURL() string { return "player.getVideoUrl();" }

func VideoEmbedCode() string { return "player.getVideoEmbedCode();" }

func PlaylistIndex() string { return "player.getPlaylistIndex();" }

// Playlist and AvailablePlaybackRates stringify on the page side so the
// reply is well-formed JSON instead of the runtime's array toString.
func Playlist() string { return "JSON.stringify(player.getPlaylist());" }

func AvailablePlaybackRates() string {
	return "JSON.stringify(player.getAvailablePlaybackRates());"
}

// num renders a float in locale-independent decimal form. Sprintf %f would
// also be locale-safe in Go, but FormatFloat keeps 12.3 as "12.3" instead
// of "12.300000".
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// quote wraps s in single quotes as a JS string literal. Backslashes,
// quotes and newlines are escaped so a hostile id cannot break out of the
// literal and run in the page.
func quote(s string) string {
	return "'" + literalEscaper.Replace(s) + "'"
}

func videoList(ids []string) string {
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = quote(id)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func videoObject(a VideoArgs) string {
	var b strings.Builder
	b.WriteString("{'videoId': ")
	b.WriteString(quote(a.VideoID))
	b.WriteString(", 'startSeconds': ")
	b.WriteString(num(a.StartSeconds))
	if a.EndSeconds > 0 {
		b.WriteString(", 'endSeconds': ")
		b.WriteString(num(a.EndSeconds))
	}
	b.WriteString("}")
	return b.String()
}
