package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"webclass/internal/logger"
	"webclass/internal/negotiate"
	"webclass/internal/render"
	"webclass/internal/store"
	"webclass/models"
)

// listUsers serves the user collection. Browsers get the rendered index,
// API clients get the fixed listing acknowledgement.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, textUserList)
		return
	}

	users := h.storages.Users.List(r.Context())
	flashes := h.sessions.PopFlashes(w, r)
	h.renderPage(w, r, http.StatusOK, render.PageUsersIndex, "Users", users, flashes)
}

// createUser adds a record to the in-memory collection. Browsers submit the
// users page form and are redirected back to the listing; API clients send
// JSON. The identifier is always server-assigned regardless of what the
// client sends.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if modeFrom(r.Context()) == negotiate.HTML {
		h.createUserForm(w, r)
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed user payload")
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	created, err := h.storages.Users.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			writeText(w, http.StatusBadRequest, textBadRequest)
			return
		}
		logger.FromRequest(r).Err(err).Msg("error creating user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int("id", created.ID).Msg("user created")
	writeText(w, http.StatusCreated, textUserCreated)
}

func (h *Handler) createUserForm(w http.ResponseWriter, r *http.Request) {
	user := models.User{
		Surname:   r.PostFormValue("surname"),
		FirstName: r.PostFormValue("first_name"),
		Email:     r.PostFormValue("email"),
		Info:      r.PostFormValue("info"),
		Name:      r.PostFormValue("name"),
	}

	created, err := h.storages.Users.Create(r.Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			h.flash(w, r, models.Flash{Type: models.FlashError, Text: "A user needs either both names or a display name"})
			redirect(w, r, "/users")
			return
		}
		logger.FromRequest(r).Err(err).Msg("error creating user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger.FromRequest(r).Info().Int("id", created.ID).Msg("user created")
	h.flash(w, r, models.Flash{Type: models.FlashSuccess, Text: "User created"})
	redirect(w, r, "/users")
}

// showUser serves a single user record.
func (h *Handler) showUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "No such user")
		return
	}

	user, err := h.storages.Users.Get(r.Context(), id)
	if err != nil {
		h.notFound(w, r, "No such user")
		return
	}

	if modeFrom(r.Context()) != negotiate.HTML {
		writeText(w, http.StatusOK, fmt.Sprintf("User %d: %s", user.ID, user.DisplayName()))
		return
	}

	flashes := h.sessions.PopFlashes(w, r)
	h.renderPage(w, r, http.StatusOK, render.PageUserShow, user.DisplayName(), user, flashes)
}

// replaceUser overwrites the record at the given identifier, creating it when
// absent.
func (h *Handler) replaceUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "No such user")
		return
	}

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("malformed user payload")
		writeText(w, http.StatusBadRequest, textBadRequest)
		return
	}

	if _, err := h.storages.Users.Replace(r.Context(), id, user); err != nil {
		if errors.Is(err, store.ErrInvalidRecord) {
			writeText(w, http.StatusBadRequest, textBadRequest)
			return
		}
		logger.FromRequest(r).Err(err).Msg("error replacing user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeText(w, http.StatusOK, textUserUpdated)
}

// deleteUser removes the record. Deleting the sentinel or a missing record is
// a silent no-op, same acknowledgement as a real removal.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.notFound(w, r, "No such user")
		return
	}

	if err := h.storages.Users.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Msg("error deleting user")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.deleteResponse(w, textUserDeleted)
}
