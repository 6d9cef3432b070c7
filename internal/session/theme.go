package session

import (
	"net/http"
	"time"

	"webclass/models"
)

const (
	// themeCookieName is the fixed name of the theme preference cookie.
	themeCookieName = "theme"

	// themeMaxAge keeps the preference for roughly three months.
	themeMaxAge = 90 * 24 * time.Hour
)

// Theme returns the theme preference stored client-side, defaulting to
// "auto" when the cookie is absent or carries an unknown value.
func Theme(r *http.Request) string {
	c, err := r.Cookie(themeCookieName)
	if err != nil || !models.ValidTheme(c.Value) {
		return models.ThemeAuto
	}
	return c.Value
}

// SetTheme persists the theme preference. Unlike the session cookie it is
// deliberately readable by client scripts so the page can apply the theme
// without a round trip.
func SetTheme(w http.ResponseWriter, theme string) {
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookieName,
		Value:    theme,
		Path:     "/",
		MaxAge:   int(themeMaxAge.Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
