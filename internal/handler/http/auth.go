// SPDX-License-Identifier: Apache-2.0

package http

import (
	"errors"
	"net/http"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/render"
	"webclass/internal/service"
	"webclass/internal/store"
	"webclass/models"
)

// registerForm serves the registration page to browsers and a usage line to
// API clients.
func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textRegisterUsage)
		return
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderPage(w, r, http.StatusOK, render.PageRegister, "Register", nil, flashes)
}

// register creates a new credential from the submitted email and password.
// Browsers end up back on the home page with a flash either way; API clients
// get a status code and a fixed body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	identity, err := h.services.AuthService.Register(r.Context(), email, password, models.RoleMember)
	if err != nil {
		h.registerFailed(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("email", identity.Email).Msg("new credential registered")

	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusCreated, textRegistered)
		return
	}

	h.flash(w, r, models.Flash{Type: models.FlashSuccess, Text: "Registered! You can log in now."})
	redirect(w, r, "/")
}

func (h *Handler) registerFailed(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		log.Debug().Msg("registration rejected: missing email or password")
		if modeFrom(r.Context()) == negotiate.HTML {
			h.flash(w, r, models.Flash{Type: models.FlashError, Text: "Email and password are both required"})
			redirect(w, r, "/auth/register")
			return
		}
		writeText(w, http.StatusBadRequest, textBadRequest)
	case errors.Is(err, store.ErrEmailTaken):
		log.Debug().Msg("registration rejected: email already registered")
		if modeFrom(r.Context()) == negotiate.HTML {
			h.flash(w, r, models.Flash{Type: models.FlashError, Text: "That email is already registered"})
			redirect(w, r, "/auth/register")
			return
		}
		writeText(w, http.StatusBadRequest, textBadRequest)
	default:
		log.Err(err).Msg("error registering credential")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// login verifies the submitted credentials and establishes the session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	identity, err := h.services.AuthService.Authenticate(r.Context(), email, password)
	if err != nil {
		h.loginFailed(w, r, err)
		return
	}

	if err := h.sessions.SignIn(w, r, h.services.AuthService.Serialize(identity)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error establishing session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Str("email", identity.Email).Msg("credential logged in")

	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textLoggedIn)
		return
	}

	h.flash(w, r, models.Flash{Type: models.FlashSuccess, Text: "Logged in"})
	redirect(w, r, "/")
}

func (h *Handler) loginFailed(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if !errors.Is(err, service.ErrInvalidCredentials) {
		log.Err(err).Msg("error authenticating credential")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Msg("login rejected: invalid credentials")

	if modeFrom(r.Context()) == negotiate.HTML {
		h.flash(w, r, models.Flash{Type: models.FlashError, Text: "Invalid email or password"})
		redirect(w, r, "/")
		return
	}
	writeText(w, http.StatusUnauthorized, "Invalid credentials")
}

// logout drops the session. Logging out without a session is not an error.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		logger.FromRequest(r).Err(err).Msg("error clearing session")
	}

	if modeFrom(r.Context()) == negotiate.HTML {
		redirect(w, r, "/")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// flash attaches a flash message, logging rather than failing when the
// session write goes wrong.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, flash models.Flash) {
	if err := h.sessions.AddFlash(w, r, flash); err != nil {
		logger.FromRequest(r).Err(err).Msg("error attaching flash message")
	}
}
