package httpx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

// CreateOrder converts the caller's cart into an order. The two early-exit
// outcomes (empty cart, no resolvable address) are 200s with only a
// message; clients distinguish them from errors by the absence of an error
// code.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	outcome, err := h.orders.Create(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	if outcome.Order != nil {
		slog.InfoContext(r.Context(), "order created",
			"order_id", outcome.Order.ID, "user_id", user.ID, "net_amount", outcome.Order.NetAmount)
	}
	writeJSON(w, http.StatusOK, CreateOrderResponse{Message: outcome.Message, Order: outcome.Order})
}

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	orders, err := h.orders.ListMine(r.Context(), user.ID)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orders.Cancel(r.Context(), user, id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	slog.InfoContext(r.Context(), "order cancelled", "order_id", order.ID, "user_id", user.ID)
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orders.GetByID(r.Context(), id)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	if order.UserID != user.ID && !user.IsAdmin() {
		writeError(r.Context(), w, apperr.Forbidden(apperr.CodeOrderNotOwned, "Order does not belong to the user"))
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// ListAllOrders is the privileged paginated listing across all users.
func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilter(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	orders, err := h.orders.ListAll(r.Context(), ports.OrderPage{
		Status: status,
		Skip:   queryInt(r, "skip", 0),
		Take:   queryInt(r, "take", 5),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListUserOrders is the privileged per-user listing. The target user id
// must be well formed; take and skip are clamped by the service.
func (h *Handler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(r.Context(), w, apperr.Validation(apperr.CodeUnprocessable, "invalid user id",
			apperr.FieldIssue{Field: "id", Issue: "must be a number"}))
		return
	}

	status, err := statusFilter(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	orders, err := h.orders.ListForUser(r.Context(), targetID, ports.OrderPage{
		Status: status,
		Skip:   queryInt(r, "skip", 0),
		Take:   queryInt(r, "take", 5),
	})
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// ChangeOrderStatus sets an order to any status in the vocabulary; unknown
// values are rejected before the service is consulted.
func (h *Handler) ChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	var req ChangeStatusRequest
	if err := h.decode(r, &req); err != nil {
		writeError(r.Context(), w, err)
		return
	}

	status, ok := entity.ParseOrderStatus(req.Status)
	if !ok {
		writeError(r.Context(), w, apperr.Validation(apperr.CodeInvalidStatus, "unknown order status "+req.Status))
		return
	}

	order, err := h.orders.ChangeStatus(r.Context(), id, status)
	if err != nil {
		writeError(r.Context(), w, err)
		return
	}

	slog.InfoContext(r.Context(), "order status changed", "order_id", order.ID, "status", order.Status)
	writeJSON(w, http.StatusOK, order)
}
