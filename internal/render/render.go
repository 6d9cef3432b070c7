// Package render holds the two server-side template pipelines of the
// application: the classic pipeline built on html/template for the core
// pages, and the pongo2 pipeline for the article pages. Both read their
// sources from one embedded filesystem, so the binary is self-contained.
package render

import (
	"embed"

	"webclass/models"
)

//go:embed templates
var templateFS embed.FS

// PageData is the envelope every HTML page receives. Handlers fill Data
// with the page-specific payload; the rest is ambient request state.
type PageData struct {
	// Title is the page title shown in the browser tab.
	Title string

	// Theme is the client's theme preference (light, dark, auto).
	Theme string

	// Identity is the authenticated identity, or nil for guests.
	Identity *models.Identity

	// Flashes are the one-time messages consumed from the session.
	Flashes []models.Flash

	// Data carries the page-specific payload.
	Data any
}
