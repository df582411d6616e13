package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/infra/store"
)

// newTestDB opens a fresh in-memory database per test. A single connection
// keeps every query on the same in-memory instance.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role entity.Role) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:     "Test User",
		Email:    email,
		Password: "not-a-real-hash",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedAddress(t *testing.T, db *gorm.DB, userID int64) *entity.Address {
	t.Helper()
	address := &entity.Address{
		UserID:  userID,
		LineOne: "42 Market St",
		City:    "Springfield",
		Country: "US",
		PinCode: "123456",
	}
	require.NoError(t, db.Create(address).Error)
	return address
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, tags string) *entity.Product {
	t.Helper()
	product := &entity.Product{
		Name:        name,
		Description: name + " description",
		Price:       decimal.RequireFromString(price),
		Tags:        tags,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func setDefaultShipping(t *testing.T, db *gorm.DB, user *entity.User, addressID int64) {
	t.Helper()
	require.NoError(t, db.Model(user).Update("default_shipping_address_id", addressID).Error)
	user.DefaultShippingAddressID = &addressID
}

func requireKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	require.True(t, apperr.IsKind(err, kind), "expected kind %d, got %v", kind, err)
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, apperr.From(err).Code)
}
