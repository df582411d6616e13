package httpx

import (
	"net/http"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

func (h *Handler) AddAddress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req AddressRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	address, err := h.users.AddAddress(r.Context(), user.ID, ports.AddAddress{
		LineOne: req.LineOne,
		LineTwo: req.LineTwo,
		City:    req.City,
		Country: req.Country,
		PinCode: req.PinCode,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, address)
}

func (h *Handler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	addresses, err := h.users.ListAddresses(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, addresses)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if err := h.users.DeleteAddress(r.Context(), user.ID, id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Address deleted successfully"})
}

// UpdateProfile sets the caller's name and default shipping/billing
// addresses.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req UpdateProfileRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	updated, err := h.users.UpdateProfile(r.Context(), user.ID, ports.UpdateProfile{
		Name:                   req.Name,
		DefaultShippingAddress: req.DefaultShippingAddress,
		DefaultBillingAddress:  req.DefaultBillingAddress,
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) ChangeUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req ChangeRoleRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		writeError(r.Context(), w, apperr.Validation(apperr.CodeUnprocessable, "unknown role "+req.Role,
			apperr.FieldIssue{Field: "role", Issue: "must be USER or ADMIN"}))
		return
	}

	user, err := h.users.ChangeRole(r.Context(), id, role)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), queryInt(r, "skip", 0), queryInt(r, "take", 5))
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
