package player

import (
	"net/url"
	"testing"

	"ytembed/events"
	"ytembed/navigation"
)

// fakeEngine records loads and evaluated scripts and replies to queries
// with canned strings keyed by script text.
type fakeEngine struct {
	loadedHTML string
	baseURL    *url.URL
	scripts    []string
	replies    map[string]string
	background string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{replies: map[string]string{}}
}

func (e *fakeEngine) LoadHTML(html string, baseURL *url.URL) {
	e.loadedHTML = html
	e.baseURL = baseURL
}

func (e *fakeEngine) EvaluateScript(js string, complete func(string, error)) {
	e.scripts = append(e.scripts, js)
	if complete == nil {
		return
	}
	if reply, ok := e.replies[js]; ok {
		complete(reply, nil)
	}
	// No canned reply: the completion is never invoked, like a page that
	// never answers.
}

func (e *fakeEngine) SetBackgroundColor(css string) { e.background = css }

func (e *fakeEngine) lastScript() string {
	if len(e.scripts) == 0 {
		return ""
	}
	return e.scripts[len(e.scripts)-1]
}

func TestLoadVideoByIDSetsOrigin(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)

	err := p.LoadVideoByID("abc123", map[string]any{"origin": "https://example.com"})
	if err != nil {
		t.Fatalf("LoadVideoByID: %v", err)
	}
	if p.Origin() == nil || p.Origin().Host != "example.com" {
		t.Errorf("origin = %v, want example.com", p.Origin())
	}
	if engine.loadedHTML == "" {
		t.Error("engine did not receive content")
	}
	if engine.baseURL == nil || engine.baseURL.Host != "example.com" {
		t.Errorf("baseURL = %v, want the trusted origin", engine.baseURL)
	}
}

func TestLoadFailureReplacesNothing(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)

	if err := p.LoadVideoByID("abc123", map[string]any{"origin": "https://example.com"}); err != nil {
		t.Fatalf("first load: %v", err)
	}
	before := p.Origin()

	err := p.LoadWithPlayerParams(map[string]any{
		"playerVars": map[string]any{"bad": make(chan int)},
	})
	if err == nil {
		t.Fatal("expected load failure for non-encodable params")
	}
	if p.Origin() != before {
		t.Error("failed load replaced the trusted origin")
	}
}

func TestLoadHooks(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)

	var shown, hidden bool
	p.Hooks.ShowLoading = func() { shown = true }
	p.Hooks.HideLoading = func() { hidden = true }
	p.Hooks.PreferredBackgroundColor = func() string { return "#000" }

	if err := p.LoadVideoByID("abc123", nil); err != nil {
		t.Fatalf("LoadVideoByID: %v", err)
	}
	if !shown {
		t.Error("ShowLoading not invoked on load")
	}
	if engine.background != "#000" {
		t.Errorf("background = %q, want #000", engine.background)
	}
	if hidden {
		t.Error("HideLoading invoked before ready")
	}

	p.HandleNavigation("ytplayer://onReady?data=null")
	if !hidden {
		t.Error("HideLoading not invoked on ready")
	}
}

func TestCommandsReachEngine(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"play", p.Play, "player.playVideo();"},
		{"pause", p.Pause, "player.pauseVideo();"},
		{"seek", func() { p.SeekTo(12.3, true) }, "player.seekTo(12.3, true);"},
		{"rate", func() { p.SetPlaybackRate(1.5) }, "player.setPlaybackRate(1.5);"},
		{"loop", func() { p.SetLoop(true) }, "player.setLoop(true);"},
		{"shuffle", func() { p.SetShuffle(true) }, "player.setShuffle(true);"},
		{"next", p.NextVideo, "player.nextVideo();"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.call()
			if got := engine.lastScript(); got != tt.want {
				t.Errorf("engine got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQueries(t *testing.T) {
	engine := newFakeEngine()
	engine.replies["player.getCurrentTime();"] = "42.5"
	engine.replies["player.getPlayerState();"] = "1"
	engine.replies["player.getDuration();"] = "garbage"
	engine.replies["JSON.stringify(player.getPlaylist());"] = `["a1","b2"]`
	p := New(engine)

	var gotTime float64
	p.CurrentTime(func(s float64) { gotTime = s })
	if gotTime != 42.5 {
		t.Errorf("CurrentTime = %v, want 42.5", gotTime)
	}

	var gotState events.PlaybackState
	p.State(func(s events.PlaybackState) { gotState = s })
	if gotState != events.StatePlaying {
		t.Errorf("State = %v, want playing", gotState)
	}

	// Wrong-shape reply decodes to the zero value.
	gotTime = -1
	p.Duration(func(s float64) { gotTime = s })
	if gotTime != 0 {
		t.Errorf("Duration with garbage reply = %v, want 0", gotTime)
	}

	var gotList []string
	p.Playlist(func(l []string) { gotList = l })
	if len(gotList) != 2 || gotList[0] != "a1" {
		t.Errorf("Playlist = %v", gotList)
	}
}

// TestQueryNoReplyNeverCompletes verifies a query that gets no reply never
// invokes its completion.
func TestQueryNoReplyNeverCompletes(t *testing.T) {
	p := New(newFakeEngine())
	called := false
	p.VideoLoadedFraction(func(float64) { called = true })
	if called {
		t.Error("completion invoked without a reply")
	}
}

func TestHandleNavigationDispatch(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)
	if err := p.LoadVideoByID("abc123", map[string]any{"origin": "https://example.com"}); err != nil {
		t.Fatalf("load: %v", err)
	}

	var gotState events.PlaybackState = events.StateUnknown
	var gotSeconds float64
	var gotErr events.PlayerError = -1
	p.Callbacks.OnStateChange = func(s events.PlaybackState) { gotState = s }
	p.Callbacks.OnPlayTime = func(s float64) { gotSeconds = s }
	p.Callbacks.OnError = func(e events.PlayerError) { gotErr = e }

	if d := p.HandleNavigation("ytplayer://onStateChange?data=1"); d != navigation.InterceptAsCallback {
		t.Errorf("state change decision = %v", d)
	}
	if gotState != events.StatePlaying {
		t.Errorf("OnStateChange got %v, want playing", gotState)
	}

	if d := p.HandleNavigation("ytplayer://onPlayTime?data=12.5"); d != navigation.InterceptAsCallback {
		t.Errorf("play time decision = %v", d)
	}
	if gotSeconds != 12.5 {
		t.Errorf("OnPlayTime got %v, want 12.5", gotSeconds)
	}

	p.HandleNavigation("ytplayer://onError?data=150")
	if gotErr != events.ErrorNotEmbeddable {
		t.Errorf("OnError got %v, want not-embeddable", gotErr)
	}

	// The page's bootstrap notification is not one of the known callbacks;
	// it is intercepted and dropped without any dispatch.
	if d := p.HandleNavigation("ytplayer://onYouTubeIframeAPIReady"); d != navigation.InterceptAsCallback {
		t.Errorf("bootstrap decision = %v", d)
	}
}

func TestHandleNavigationRouting(t *testing.T) {
	engine := newFakeEngine()
	p := New(engine)
	if err := p.LoadVideoByID("abc123", map[string]any{"origin": "https://example.com"}); err != nil {
		t.Fatalf("load: %v", err)
	}

	var opened *url.URL
	p.Hooks.OpenExternal = func(u *url.URL) { opened = u }

	if d := p.HandleNavigation("https://example.com/internal"); d != navigation.AllowInPlace {
		t.Errorf("same-origin decision = %v, want AllowInPlace", d)
	}
	if d := p.HandleNavigation("https://www.youtube.com/embed/abc123"); d != navigation.AllowInPlace {
		t.Errorf("embed page decision = %v, want AllowInPlace", d)
	}

	if d := p.HandleNavigation("https://some-random-site.com/"); d != navigation.OpenExternally {
		t.Errorf("external decision = %v, want OpenExternally", d)
	}
	if opened == nil || opened.Host != "some-random-site.com" {
		t.Errorf("OpenExternal got %v", opened)
	}
}
