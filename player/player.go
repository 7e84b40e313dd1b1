// Package player is the host-facing wrapper around the embedded YouTube
// iframe player: it loads generated embed pages into an Engine, issues
// remote commands, and turns intercepted ytplayer:// navigations into typed
// notifications.
package player

import (
	"net/url"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"ytembed/embed"
	"ytembed/events"
	"ytembed/navigation"
	"ytembed/script"
)

// Callbacks are the host's notification slots. Every slot is optional; a
// nil slot drops that notification kind.
type Callbacks struct {
	OnReady         func()
	OnStateChange   func(events.PlaybackState)
	OnQualityChange func(events.PlaybackQuality)
	OnError         func(events.PlayerError)
	OnPlayTime      func(seconds float64)
	OnAPILoadFailed func()
}

// Hooks let the host customize the embedding surface. All optional.
type Hooks struct {
	// PreferredBackgroundColor returns a CSS color applied to the surface
	// before each load, when the engine supports it.
	PreferredBackgroundColor func() string

	// ShowLoading and HideLoading bracket the interval between a load
	// request and the ready (or API-load-failure) notification.
	ShowLoading func()
	HideLoading func()

	// OpenExternal receives URLs the navigation policy sends to a full
	// browser context.
	OpenExternal func(*url.URL)
}

// Player drives one embedded player instance. Not safe for concurrent use;
// all calls and engine callbacks belong on the host's UI/event goroutine.
type Player struct {
	Callbacks Callbacks
	Hooks     Hooks

	engine Engine
	origin *url.URL
	logger *log.Entry
}

func New(engine Engine) *Player {
	return &Player{
		engine: engine,
		logger: log.WithFields(log.Fields{"module": "player"}),
	}
}

// Origin is the trusted origin of the currently loaded page. Blank until
// the first successful load.
func (p *Player) Origin() *url.URL {
	return p.origin
}

// LoadVideoByID rebuilds the embedded content around a single video.
// playerVars may be nil. On failure nothing is replaced.
func (p *Player) LoadVideoByID(videoID string, playerVars map[string]any) error {
	page, err := embed.ForVideo(videoID, playerVars)
	return p.load(page, err)
}

// LoadPlaylistByID rebuilds the embedded content around a playlist.
func (p *Player) LoadPlaylistByID(playlistID string, playerVars map[string]any) error {
	page, err := embed.ForPlaylist(playlistID, playerVars)
	return p.load(page, err)
}

// LoadWithPlayerParams rebuilds the embedded content from a raw parameter
// bag, for callers that need full control over the payload.
func (p *Player) LoadWithPlayerParams(params map[string]any) error {
	page, err := embed.ForParams(params)
	return p.load(page, err)
}

// load replaces the content and trusted origin wholesale. There is no
// incremental update path: the origin tracking in HandleNavigation depends
// on content and origin always changing together.
func (p *Player) load(page *embed.Page, err error) error {
	if err != nil {
		p.logger.Errorf("load failed: %v", err)
		sentry.CaptureException(err)
		return err
	}

	if hook := p.Hooks.PreferredBackgroundColor; hook != nil {
		if setter, ok := p.engine.(BackgroundColorSetter); ok {
			setter.SetBackgroundColor(hook())
		}
	}
	if show := p.Hooks.ShowLoading; show != nil {
		show()
	}

	p.origin = page.Origin
	p.engine.LoadHTML(page.HTML, page.Origin)
	return nil
}

// Fire-and-forget playback commands.

func (p *Player) Play() { p.run(script.Play()) }

func (p *Player) Pause() { p.run(script.Pause()) }

func (p *Player) Stop() { p.run(script.Stop()) }

func (p *Player) SeekTo(seconds float64, allowSeekAhead bool) {
	p.run(script.SeekTo(seconds, allowSeekAhead))
}

func (p *Player) CueVideo(a script.VideoArgs) { p.run(script.CueVideo(a)) }

func (p *Player) LoadVideo(a script.VideoArgs) { p.run(script.LoadVideo(a)) }

func (p *Player) CueVideoByURL(videoURL string, startSeconds float64) {
	p.run(script.CueVideoByURL(videoURL, startSeconds))
}

func (p *Player) LoadVideoByURL(videoURL string, startSeconds float64) {
	p.run(script.LoadVideoByURL(videoURL, startSeconds))
}

func (p *Player) CuePlaylist(playlistID string, index int, startSeconds float64) {
	p.run(script.CuePlaylist(playlistID, index, startSeconds))
}

func (p *Player) LoadPlaylist(playlistID string, index int, startSeconds float64) {
	p.run(script.LoadPlaylist(playlistID, index, startSeconds))
}

func (p *Player) CuePlaylistVideos(videoIDs []string, index int, startSeconds float64) {
	p.run(script.CuePlaylistVideos(videoIDs, index, startSeconds))
}

func (p *Player) LoadPlaylistVideos(videoIDs []string, index int, startSeconds float64) {
	p.run(script.LoadPlaylistVideos(videoIDs, index, startSeconds))
}

func (p *Player) SetPlaybackRate(rate float64) { p.run(script.SetPlaybackRate(rate)) }

func (p *Player) SetLoop(loop bool) { p.run(script.SetLoop(loop)) }

func (p *Player) SetShuffle(shuffle bool) { p.run(script.SetShuffle(shuffle)) }

func (p *Player) NextVideo() { p.run(script.NextVideo()) }

func (p *Player) PreviousVideo() { p.run(script.PreviousVideo()) }

func (p *Player) PlayVideoAt(index int) { p.run(script.PlayVideoAt(index)) }

func (p *Player) Mute() { p.run(script.Mute()) }

func (p *Player) Unmute() { p.run(script.Unmute()) }

// Query operations. Each completion is invoked at most once; if the runtime
// never replies, the completion is never invoked. Replies of the wrong
// shape decode to the type's zero value.

func (p *Player) CurrentTime(complete func(seconds float64)) {
	p.query(script.CurrentTime(), func(reply string) { complete(script.DecodeFloat(reply)) })
}

func (p *Player) Duration(complete func(seconds float64)) {
	p.query(script.Duration(), func(reply string) { complete(script.DecodeFloat(reply)) })
}

func (p *Player) State(complete func(events.PlaybackState)) {
	p.query(script.PlayerState(), func(reply string) { complete(script.DecodeState(reply)) })
}

func (p *Player) PlaybackRate(complete func(float64)) {
	p.query(script.PlaybackRate(), func(reply string) { complete(script.DecodeFloat(reply)) })
}

func (p *Player) AvailablePlaybackRates(complete func([]float64)) {
	p.query(script.AvailablePlaybackRates(), func(reply string) { complete(script.DecodeFloatList(reply)) })
}

func (p *Player) VideoLoadedFraction(complete func(float64)) {
	p.query(script.VideoLoadedFraction(), func(reply string) { complete(script.DecodeFloat(reply)) })
}

func (p *Player) VideoURL(complete func(*url.URL)) {
	p.query(script.VideoURL(), func(reply string) { complete(script.DecodeURL(reply)) })
}

func (p *Player) VideoEmbedCode(complete func(string)) {
	p.query(script.VideoEmbedCode(), func(reply string) { complete(reply) })
}

func (p *Player) Playlist(complete func([]string)) {
	p.query(script.Playlist(), func(reply string) { complete(script.DecodeStringList(reply)) })
}

func (p *Player) PlaylistIndex(complete func(int)) {
	p.query(script.PlaylistIndex(), func(reply string) { complete(script.DecodeInt(reply)) })
}

func (p *Player) run(js string) {
	p.engine.EvaluateScript(js, nil)
}

func (p *Player) query(js string, deliver func(reply string)) {
	p.engine.EvaluateScript(js, func(result string, err error) {
		if err != nil {
			p.logger.Warnf("query %q failed: %v", js, err)
			return
		}
		deliver(result)
	})
}

// HandleNavigation is the interception entry point. The host calls it for
// every outgoing navigation attempt from the embedding surface and honors
// the returned decision: AllowInPlace proceeds, everything else cancels the
// navigation. Callback URLs are decoded and dispatched before returning;
// OpenExternally targets are handed to the OpenExternal hook.
func (p *Player) HandleNavigation(raw string) navigation.Decision {
	target, err := url.Parse(raw)
	if err != nil {
		p.logger.Warnf("unparsable navigation target %q: %v", raw, err)
		return navigation.Block
	}

	decision := navigation.Classify(target, p.origin)
	switch decision {
	case navigation.InterceptAsCallback:
		p.dispatch(target)
	case navigation.OpenExternally:
		p.logger.Debugf("sending %q to external browser", raw)
		if open := p.Hooks.OpenExternal; open != nil {
			open(target)
		}
	}
	return decision
}

func (p *Player) dispatch(u *url.URL) {
	ev, ok := events.ParseCallbackURL(u)
	if !ok {
		// Unknown callback names are dropped without surfacing an error.
		p.logger.Tracef("ignoring unknown callback %q", u.Host)
		return
	}

	switch ev.Kind {
	case events.KindReady:
		p.hideLoading()
		if cb := p.Callbacks.OnReady; cb != nil {
			cb()
		}
	case events.KindStateChange:
		if cb := p.Callbacks.OnStateChange; cb != nil {
			cb(ev.State)
		}
	case events.KindQualityChange:
		if cb := p.Callbacks.OnQualityChange; cb != nil {
			cb(ev.Quality)
		}
	case events.KindError:
		p.logger.Warnf("player error: %s (wire code %q)", ev.Error, ev.Data)
		if cb := p.Callbacks.OnError; cb != nil {
			cb(ev.Error)
		}
	case events.KindPlayTime:
		if cb := p.Callbacks.OnPlayTime; cb != nil {
			cb(ev.Seconds)
		}
	case events.KindAPILoadFailed:
		p.logger.Error("iframe API failed to load")
		p.hideLoading()
		if cb := p.Callbacks.OnAPILoadFailed; cb != nil {
			cb()
		}
	}
}

func (p *Player) hideLoading() {
	if hide := p.Hooks.HideLoading; hide != nil {
		hide()
	}
}
