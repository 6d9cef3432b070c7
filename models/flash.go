package models

// Flash message kinds understood by the page templates.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash is a one-time notification attached to the session. It is consumed
// by the next rendered page and then discarded.
type Flash struct {
	Type string
	Text string
}
