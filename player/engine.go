package player

import "net/url"

// Engine is the capability the embedding surface must expose: load content
// with an associated base origin and evaluate script in the page, with the
// result delivered asynchronously as a string. Navigation interception is
// the host's side of the contract — it feeds every outgoing navigation
// attempt into [Player.HandleNavigation] and honors the returned decision.
//
// All Engine callbacks are expected on the host's UI/event goroutine; the
// bridge keeps no locks and relies on that single-threaded delivery.
type Engine interface {
	// LoadHTML replaces the surface's content wholesale. baseURL becomes
	// the document's base location and may be blank.
	LoadHTML(html string, baseURL *url.URL)

	// EvaluateScript submits js for execution in the page. complete may be
	// nil for fire-and-forget commands; when non-nil it is invoked at most
	// once with the runtime's string reply.
	EvaluateScript(js string, complete func(result string, err error))
}

// BackgroundColorSetter is an optional Engine extension. When the host
// supplies a PreferredBackgroundColor hook and the engine implements this,
// the color is applied before each load.
type BackgroundColorSetter interface {
	SetBackgroundColor(css string)
}
