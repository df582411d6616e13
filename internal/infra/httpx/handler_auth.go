package httpx

import (
	"log/slog"
	"net/http"
)

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	user, err := h.auth.SignUp(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	slog.InfoContext(r.Context(), "user signed up", "user_id", user.ID)
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req LogInRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	user, signed, err := h.auth.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, LogInResponse{User: user, Token: signed})
}

// Me returns the identity resolved from the bearer credential.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
