package main

import (
	"log"
	"log/slog"
	"net/http"

	"github.com/jcmexdev/ecommerce-api/internal/config"
	"github.com/jcmexdev/ecommerce-api/internal/core/services"
	"github.com/jcmexdev/ecommerce-api/internal/infra/httpx"
	"github.com/jcmexdev/ecommerce-api/internal/infra/httpx/middlewares"
	"github.com/jcmexdev/ecommerce-api/internal/infra/store"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/telemetry"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/token"
)

func main() {
	telemetry.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := store.Open(cfg.DB)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}

	// The cache is optional: no redis address means product reads always
	// hit the store.
	var productCache cache.Cache
	if cfg.Redis.Addr != "" {
		productCache = cache.NewRedisCache(cfg.Redis.Addr, "shop")
	} else {
		slog.Info("redis not configured, product cache disabled")
	}

	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := services.NewAuthService(db, tokens)
	catalogService := services.NewCatalogService(db, productCache)
	cartService := services.NewCartService(db)
	orderService := services.NewOrderService(db, cfg.Orders.StrictTransitions)
	userService := services.NewUserService(db)

	handler := httpx.NewHandler(authService, catalogService, cartService, orderService, userService)
	authenticator := middlewares.NewAuthenticator(tokens, authService)
	router := httpx.NewRouter(handler, authenticator)

	log.Printf("API server running on %s", cfg.Server.Addr)
	if err := http.ListenAndServe(cfg.Server.Addr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}
