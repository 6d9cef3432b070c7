// Package negotiate decides, once per request, whether a response should be
// rendered as an HTML page or as plain text.
//
// The decision is a pure function of two request headers: the declared
// acceptable media types and the client signature. Every downstream handler
// branches on the resulting [Mode] instead of re-inspecting headers.
package negotiate

import (
	"net/http"
	"strings"
)

// Mode is the per-request choice of response representation.
type Mode int

const (
	// PlainText selects the plain-text representation used by API and CLI
	// clients.
	PlainText Mode = iota

	// HTML selects the server-rendered HTML representation used by
	// browsers.
	HTML
)

// String returns a log-friendly name of the mode.
func (m Mode) String() string {
	if m == HTML {
		return "html"
	}
	return "text"
}

// ContentType returns the response Content-Type fixed by the mode.
func (m Mode) ContentType() string {
	if m == HTML {
		return "text/html; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

// browserSignatures are User-Agent fragments identifying interactive
// browsers. Matched case-insensitively and only when the Accept header did
// not name an HTML media type.
var browserSignatures = []string{"mozilla", "chrome", "safari", "firefox", "edg", "opera"}

// Pick returns the negotiated mode for the given Accept and User-Agent
// header values.
//
// Policy: an Accept explicitly listing an HTML media type wins; otherwise a
// known browser signature in the User-Agent selects HTML; everything else is
// plain text. No side effects.
func Pick(accept, userAgent string) Mode {
	if acceptsHTML(accept) {
		return HTML
	}
	if isBrowser(userAgent) {
		return HTML
	}
	return PlainText
}

// FromRequest is a convenience wrapper around [Pick] for an *http.Request.
func FromRequest(r *http.Request) Mode {
	return Pick(r.Header.Get("Accept"), r.Header.Get("User-Agent"))
}

func acceptsHTML(accept string) bool {
	lowered := strings.ToLower(accept)
	return strings.Contains(lowered, "text/html") ||
		strings.Contains(lowered, "application/xhtml+xml")
}

func isBrowser(userAgent string) bool {
	lowered := strings.ToLower(userAgent)
	for _, sig := range browserSignatures {
		if strings.Contains(lowered, sig) {
			return true
		}
	}
	return false
}
