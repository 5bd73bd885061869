package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/student-portal/internal/logger"
	"github.com/MKhiriev/student-portal/models"
	"github.com/go-chi/chi/v5"
)

const (
	queryAdminID = "adminId"
	queryType    = "type"
)

// listUsers handles GET /api/v1/users?adminId=...&type=....
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	users, err := h.directory.List(q.Get(queryAdminID), models.Role(q.Get(queryType)))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, http.StatusOK, models.Envelope[[]models.User]{Success: true, Data: users})
}

// getUser handles GET /api/v1/users/{id}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.directory.Get(userIDParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, http.StatusOK, models.Envelope[models.User]{Success: true, Data: user})
}

// createUser handles POST /api/v1/users?adminId=....
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.validator.Validate(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.directory.Create(r.URL.Query().Get(queryAdminID), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, http.StatusCreated, models.Envelope[models.User]{
		Success: true,
		Data:    created,
		Message: "user created",
	})
}

// updateUser handles PUT /api/v1/users/{id}?adminId=....
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeUser(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.validator.Validate(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.directory.Update(r.URL.Query().Get(queryAdminID), userIDParam(r), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, http.StatusOK, models.Envelope[models.User]{
		Success: true,
		Data:    updated,
		Message: "user updated",
	})
}

// deleteUser handles DELETE /api/v1/users/{id}?adminId=....
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	removed, err := h.directory.Delete(r.URL.Query().Get(queryAdminID), userIDParam(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, r, http.StatusOK, models.Envelope[models.User]{
		Success: true,
		Data:    removed,
		Message: "user deleted",
	})
}

func userIDParam(r *http.Request) models.ID {
	return models.ID(chi.URLParam(r, "id"))
}

func decodeUser(r *http.Request) (models.User, error) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	return user, nil
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeEnvelope(w, r, status, models.Envelope[any]{Message: message})
}

func writeEnvelope[T any](w http.ResponseWriter, r *http.Request, status int, env models.Envelope[T]) {
	body, err := json.Marshal(env)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode response envelope")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
