// Package navigation classifies outgoing navigation attempts from the
// embedded page. Third-party embeds originate arbitrary outbound links —
// ads, sign-in, logo clicks — and only content belonging to the player's own
// infrastructure may render inside the embedding surface; everything else
// leaves to a full browser context.
package navigation

import (
	"net/url"
	"regexp"

	"ytembed/events"
)

// Decision is the outcome of filtering one navigation attempt. It is a pure
// function of the target URL and the current trusted origin.
type Decision int

const (
	// Block suppresses the navigation without any further handling. Only
	// produced for targets that do not parse as URLs.
	Block Decision = iota

	// AllowInPlace lets the navigation proceed inside the embedding surface.
	AllowInPlace

	// InterceptAsCallback hands the URL to the callback decoder; the
	// navigation itself is always suppressed.
	InterceptAsCallback

	// OpenExternally hands the URL to the host's external-link opener and
	// suppresses in-place navigation.
	OpenExternally
)

func (d Decision) String() string {
	switch d {
	case AllowInPlace:
		return "allow_in_place"
	case InterceptAsCallback:
		return "intercept_as_callback"
	case OpenExternally:
		return "open_externally"
	default:
		return "block"
	}
}

// The allow-list of player-infrastructure URLs that may render in place even
// though they are cross-origin: the embed page itself, ad conversion
// pixels, Google OAuth, the static proxy page and the syndication sodar
// page.
var allowedInPlace = []*regexp.Regexp{
	regexp.MustCompile(`^https://www\.youtube\.com/embed/.*$`),
	regexp.MustCompile(`^https://pubads\.g\.doubleclick\.net/pagead/conversion/.*$`),
	regexp.MustCompile(`^https://accounts\.google\.com/o/oauth2/.*$`),
	regexp.MustCompile(`^https://content\.googleapis\.com/static/proxy\.html.*$`),
	regexp.MustCompile(`^https://tpc\.googlesyndication\.com/sodar/.*$`),
}

// Classify decides what to do with a navigation attempt. origin is the
// trusted origin of the currently loaded page; nil is treated as blank.
func Classify(target, origin *url.URL) Decision {
	if target == nil {
		return Block
	}
	if origin != nil && target.Host == origin.Host {
		return AllowInPlace
	}
	if target.Scheme == events.Scheme {
		return InterceptAsCallback
	}
	if target.Scheme == "http" || target.Scheme == "https" {
		raw := target.String()
		for _, re := range allowedInPlace {
			if re.MatchString(raw) {
				return AllowInPlace
			}
		}
		return OpenExternally
	}
	// Schemes not explicitly handled (about:, data:, ...) stay in place.
	return AllowInPlace
}

// ClassifyString parses raw and classifies it. Unparsable targets block.
func ClassifyString(raw string, origin *url.URL) Decision {
	target, err := url.Parse(raw)
	if err != nil {
		return Block
	}
	return Classify(target, origin)
}
