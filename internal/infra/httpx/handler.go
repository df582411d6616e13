// Package httpx is the HTTP surface: request decoding and validation,
// dispatch to the service ports, and response/error rendering.
package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
	"github.com/jcmexdev/ecommerce-api/internal/infra/httpx/middlewares"
)

// Handler handles incoming HTTP requests and dispatches to the domain
// services.
type Handler struct {
	auth     ports.AuthService
	catalog  ports.CatalogService
	cart     ports.CartService
	orders   ports.OrderService
	users    ports.UserService
	validate *validator.Validate
}

func NewHandler(
	auth ports.AuthService,
	catalog ports.CatalogService,
	cart ports.CartService,
	orders ports.OrderService,
	users ports.UserService,
) *Handler {
	return &Handler{
		auth:     auth,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		users:    users,
		validate: validator.New(),
	}
}

// decode parses the JSON body into dst and runs struct validation,
// converting failures into field-level validation errors.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(apperr.CodeUnprocessable, "invalid JSON body")
	}

	if err := h.validate.Struct(dst); err != nil {
		var issues []apperr.FieldIssue
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				issues = append(issues, apperr.FieldIssue{Field: fe.Field(), Issue: fe.Tag()})
			}
		}
		return apperr.Validation(apperr.CodeUnprocessable, "Unprocessable Entity", issues...)
	}
	return nil
}

// pathID parses the {id} route parameter. A malformed id is a client error,
// uniformly, rather than whatever the store would make of it.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Validation(apperr.CodeUnprocessable, "invalid id",
			apperr.FieldIssue{Field: "id", Issue: "must be a number"})
	}
	return id, nil
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// statusFilter reads the optional exact-match status query parameter.
func statusFilter(r *http.Request) (*entity.OrderStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}
	status, ok := entity.ParseOrderStatus(raw)
	if !ok {
		return nil, apperr.Validation(apperr.CodeInvalidStatus, "unknown order status "+raw)
	}
	return &status, nil
}

// currentUser returns the identity the auth middleware attached. All routes
// calling this sit behind RequireUser.
func currentUser(r *http.Request) (*entity.User, error) {
	user, ok := middlewares.UserFrom(r.Context())
	if !ok {
		return nil, apperr.Unauthorized(apperr.CodeUnauthorized, "Unauthorized")
	}
	return user, nil
}
