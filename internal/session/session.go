// Package session wraps the cookie-backed session store used for
// authentication state and flash messages, plus the client-readable theme
// preference cookie.
//
// Sessions carry exactly one piece of identity data: the opaque credential
// identifier produced by the auth service. Flash messages follow read-once
// semantics: popping them clears them from the session.
package session

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/gorilla/sessions"

	"webclass/internal/config"
	"webclass/internal/logger"
	"webclass/models"
)

const (
	// sessionName is the fixed name of the session cookie.
	sessionName = "webclass_session"

	// identityKey is the session key holding the serialized identity id.
	identityKey = "identity_id"

	// sessionMaxAge is the session cookie lifetime.
	sessionMaxAge = 7 * 24 * time.Hour
)

func init() {
	// flashes are stored gob-encoded inside the session values
	gob.Register(models.Flash{})
}

// Manager owns the signed cookie store and exposes the handful of session
// operations handlers need.
type Manager struct {
	store  *sessions.CookieStore
	logger *logger.Logger
}

// NewManager constructs a Manager signing cookies with the configured
// session secret. The Secure attribute is set only for production
// deployments so local development over plain HTTP keeps working.
func NewManager(cfg config.App, logger *logger.Logger) *Manager {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}

	logger.Debug().Bool("secure", cfg.IsProduction()).Msg("creating session manager")

	return &Manager{
		store:  store,
		logger: logger,
	}
}

// session fetches the request's session. Decoding errors (tampered or stale
// cookies) are swallowed: gorilla returns a fresh session in that case, which
// is exactly the unauthenticated behavior we want.
func (m *Manager) session(r *http.Request) *sessions.Session {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		m.logger.Debug().Err(err).Msg("session cookie rejected, starting fresh")
	}
	return s
}

// IdentityID returns the serialized identity identifier stored in the
// session, or "" when the session carries none.
func (m *Manager) IdentityID(r *http.Request) string {
	s := m.session(r)
	id, _ := s.Values[identityKey].(string)
	return id
}

// SignIn stores the identity identifier in the session.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, identityID string) error {
	s := m.session(r)
	s.Values[identityKey] = identityID
	return s.Save(r, w)
}

// SignOut drops the whole session, identity and pending flashes alike.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	s.Values = make(map[interface{}]interface{})
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

// AddFlash queues a one-time message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, flash models.Flash) error {
	s := m.session(r)
	s.AddFlash(flash)
	return s.Save(r, w)
}

// PopFlashes returns all queued flash messages and clears them from the
// session (read-once semantics).
func (m *Manager) PopFlashes(w http.ResponseWriter, r *http.Request) []models.Flash {
	s := m.session(r)

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]models.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(models.Flash); ok {
			flashes = append(flashes, f)
		}
	}

	if err := s.Save(r, w); err != nil {
		m.logger.Err(err).Msg("error saving session after consuming flashes")
	}

	return flashes
}
