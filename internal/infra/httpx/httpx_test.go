package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/services"
	"github.com/jcmexdev/ecommerce-api/internal/infra/httpx/middlewares"
	"github.com/jcmexdev/ecommerce-api/internal/infra/store"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/token"
)

type testEnv struct {
	router http.Handler
	db     *gorm.DB
	tokens *token.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, store.Migrate(db))

	tokens := token.NewManager("test-secret", time.Hour)

	authService := services.NewAuthService(db, tokens)
	handler := NewHandler(
		authService,
		services.NewCatalogService(db, nil),
		services.NewCartService(db),
		services.NewOrderService(db, false),
		services.NewUserService(db),
	)
	authenticator := middlewares.NewAuthenticator(tokens, authService)

	return &testEnv{
		router: NewRouter(handler, authenticator),
		db:     db,
		tokens: tokens,
	}
}

func (e *testEnv) seedUser(t *testing.T, email string, role entity.Role) (*entity.User, string) {
	t.Helper()
	user := &entity.User{Name: "Test", Email: email, Password: "x", Role: role}
	require.NoError(t, e.db.Create(user).Error)

	signed, err := e.tokens.Mint(user.ID)
	require.NoError(t, err)
	return user, signed
}

func (e *testEnv) do(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/cart", "/orders", "/products", "/auth/me"} {
		rec := env.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.seedUser(t, "user@example.com", entity.RoleUser)
	_, adminToken := env.seedUser(t, "admin@example.com", entity.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/orders/index", userToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/orders/index", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchWithoutQueryIsClientError(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.seedUser(t, "user@example.com", entity.RoleUser)

	rec := env.do(t, http.MethodGet, "/products/search", userToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeSearchQueryRequired, decodeBody(t, rec)["error"])
}

func TestChangeStatusRejectsUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.com", entity.RoleAdmin)

	rec := env.do(t, http.MethodPut, "/orders/1/status", adminToken, map[string]string{"status": "VANISHED"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeInvalidStatus, decodeBody(t, rec)["error"])
}

func TestCreateOrderEmptyCartIsInformational(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.seedUser(t, "user@example.com", entity.RoleUser)

	rec := env.do(t, http.MethodPost, "/orders", userToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "Cart is empty", body["message"])
	assert.NotContains(t, body, "error")
	assert.NotContains(t, body, "order")
}

func TestProductTagsAreExposedAsList(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.com", entity.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/products", adminToken, map[string]any{
		"name":        "Mug",
		"description": "A mug",
		"price":       decimal.RequireFromString("7.50"),
		"tags":        []string{"a", "b"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeBody(t, rec)
	assert.Equal(t, []any{"a", "b"}, created["tags"])

	id := int64(created["id"].(float64))
	rec = env.do(t, http.MethodGet, "/products/"+strconv.FormatInt(id, 10), adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"a", "b"}, decodeBody(t, rec)["tags"])
}

func TestListUserOrdersValidatesTargetID(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "admin@example.com", entity.RoleAdmin)

	rec := env.do(t, http.MethodGet, "/orders/users/abc", adminToken, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperr.CodeUnprocessable, decodeBody(t, rec)["error"])
}

func TestGetOrderEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner, ownerToken := env.seedUser(t, "owner@example.com", entity.RoleUser)
	_, strangerToken := env.seedUser(t, "stranger@example.com", entity.RoleUser)
	_, adminToken := env.seedUser(t, "admin@example.com", entity.RoleAdmin)

	order := entity.Order{
		UserID:    owner.ID,
		Reference: "ref-1",
		NetAmount: decimal.New(5, 0),
		Address:   "somewhere",
		Status:    entity.OrderPending,
	}
	require.NoError(t, env.db.Create(&order).Error)

	rec := env.do(t, http.MethodGet, "/orders/1", ownerToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/orders/1", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/orders/1", adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"name":  "Ana",
		"email": "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, apperr.CodeUnprocessable, body["error"])
	assert.NotEmpty(t, body["fields"])
}
