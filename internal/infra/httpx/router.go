package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/ecommerce-api/internal/infra/httpx/middlewares"
)

func NewRouter(h *Handler, auth *middlewares.Authenticator) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/login", h.LogIn)
		r.With(auth.RequireUser).Get("/me", h.Me)
	})

	r.Route("/products", func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Get("/", h.ListProducts)
		r.Get("/search", h.SearchProducts)
		r.Get("/{id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/", h.AddCartItem)
		r.Get("/", h.GetCart)
		r.Delete("/{id}", h.DeleteCartItem)
		r.Put("/{id}", h.ChangeCartQuantity)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListMyOrders)
		r.Put("/{id}/cancel", h.CancelOrder)
		r.Get("/{id}", h.GetOrder)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Get("/index", h.ListAllOrders)
			r.Get("/users/{id}", h.ListUserOrders)
			r.Put("/{id}/status", h.ChangeOrderStatus)
		})
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/address", h.AddAddress)
		r.Get("/address", h.ListAddresses)
		r.Put("/address", h.UpdateProfile)
		r.Delete("/address/{id}", h.DeleteAddress)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Put("/{id}/role", h.ChangeUserRole)
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
		})
	})

	return r
}
