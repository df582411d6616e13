package httpx

import "net/http"

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req AddCartItemRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	item, err := h.cart.AddItem(r.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartItem(item))
}

func (h *Handler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
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

	if err := h.cart.DeleteItem(r.Context(), user.ID, id); err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}

func (h *Handler) ChangeCartQuantity(w http.ResponseWriter, r *http.Request) {
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

	var req ChangeQuantityRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	item, err := h.cart.ChangeQuantity(r.Context(), user.ID, id, req.Quantity)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartItem(item))
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	items, err := h.cart.Items(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCartItems(items))
}
