package script

import "testing"

func TestCommandEncoding(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"play", Play(), "player.playVideo();"},
		{"pause", Pause(), "player.pauseVideo();"},
		{"stop", Stop(), "player.stopVideo();"},
		{"seek", SeekTo(12.3, true), "player.seekTo(12.3, true);"},
		{"seek_whole_seconds", SeekTo(45, false), "player.seekTo(45, false);"},
		{
			"cue_video",
			CueVideo(VideoArgs{VideoID: "abc123", StartSeconds: 1.5}),
			"player.cueVideoById({'videoId': 'abc123', 'startSeconds': 1.5});",
		},
		{
			"load_video_with_end",
			LoadVideo(VideoArgs{VideoID: "abc123", StartSeconds: 0, EndSeconds: 9.5}),
			"player.loadVideoById({'videoId': 'abc123', 'startSeconds': 0, 'endSeconds': 9.5});",
		},
		{
			"cue_by_url",
			CueVideoByURL("https://www.youtube.com/v/abc123", 2),
			"player.cueVideoByUrl('https://www.youtube.com/v/abc123', 2);",
		},
		{
			"cue_playlist",
			CuePlaylist("PL1234", 0, 0),
			"player.cuePlaylist('PL1234', 0, 0);",
		},
		{
			"load_playlist_videos",
			LoadPlaylistVideos([]string{"a1", "b2", "c3"}, 1, 0.5),
			"player.loadPlaylist(['a1', 'b2', 'c3'], 1, 0.5);",
		},
		{"set_rate", SetPlaybackRate(1.5), "player.setPlaybackRate(1.5);"},
		{"set_loop", SetLoop(true), "player.setLoop(true);"},
		{"set_shuffle", SetShuffle(false), "player.setShuffle(false);"},
		{"next", NextVideo(), "player.nextVideo();"},
		{"previous", PreviousVideo(), "player.previousVideo();"},
		{"play_at", PlayVideoAt(3), "player.playVideoAt(3);"},
		{"current_time", CurrentTime(), "player.getCurrentTime();"},
		{"duration", Duration(), "player.getDuration();"},
		{"state", PlayerState(), "player.getPlayerState();"},
		{"playlist", Playlist(), "JSON.stringify(player.getPlaylist());"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// TestQuoteEscaping verifies a hostile id cannot break out of the single
// quoted literal.
func TestQuoteEscaping(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc123", "'abc123'"},
		{"single_quote", "a'b", `'a\'b'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"injection_attempt", "x'); alert(1); ('", `'x\'); alert(1); (\''`},
		{"newline", "a\nb", `'a\nb'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quote(tt.in); got != tt.want {
				t.Errorf("quote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNumFormatting(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.3, "12.3"},
		{0, "0"},
		{1.25, "1.25"},
		{100000, "100000"},
		{0.001, "0.001"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
