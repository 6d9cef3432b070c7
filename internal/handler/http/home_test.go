package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_TextModeGreeting(t *testing.T) {
	router := newTestRouter(t, &mockArticleDocs{})

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/", nil), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World!", rec.Body.String())
}

func TestHome_BrowserGetsHTMLGreeting(t *testing.T) {
	router := newTestRouter(t, &mockArticleDocs{})

	rec := perform(router, asBrowser(httptest.NewRequest(http.MethodGet, "/", nil)), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Hello World!")
}

func TestHome_FlashShownOnceAfterRedirect(t *testing.T) {
	router := newTestRouter(t, &mockArticleDocs{})

	// an anonymous browser hitting a gated page gets flashed and redirected
	rec := perform(router, asBrowser(httptest.NewRequest(http.MethodGet, "/protected", nil)), nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	jar := collectCookies(nil, rec)

	rec = perform(router, asBrowser(httptest.NewRequest(http.MethodGet, "/", nil)), jar)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please log in first")
	jar = collectCookies(jar, rec)

	// read-once: a reload no longer shows the message
	rec = perform(router, asBrowser(httptest.NewRequest(http.MethodGet, "/", nil)), jar)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Please log in first")
}
