// Package ports declares the service interfaces the HTTP layer depends on.
// Handlers talk to these, never to the store directly.
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
)

type AuthService interface {
	SignUp(ctx context.Context, name, email, password string) (*entity.User, error)
	LogIn(ctx context.Context, email, password string) (*entity.User, string, error)
	UserByID(ctx context.Context, id int64) (*entity.User, error)
}

type CreateProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Tags        []string
}

// UpdateProduct is a partial update; nil fields are left untouched.
type UpdateProduct struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Tags        []string
}

type CatalogService interface {
	Create(ctx context.Context, in CreateProduct) (*entity.Product, error)
	Update(ctx context.Context, id int64, in UpdateProduct) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, skip, take int) (int64, []entity.Product, error)
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Search(ctx context.Context, query string) ([]entity.Product, error)
}

type CartService interface {
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*entity.CartItem, error)
	DeleteItem(ctx context.Context, userID, itemID int64) error
	ChangeQuantity(ctx context.Context, userID, itemID int64, quantity int) (*entity.CartItem, error)
	Items(ctx context.Context, userID int64) ([]entity.CartItem, error)
}

// OrderOutcome is the result of a create attempt. The two informational
// early exits (empty cart, unresolvable address) are successful responses
// carrying only Message, not errors; clients depend on that asymmetry.
type OrderOutcome struct {
	Order   *entity.Order
	Message string
}

// OrderPage selects a slice of a privileged order listing.
type OrderPage struct {
	Status *entity.OrderStatus
	Skip   int
	Take   int
}

type OrderService interface {
	Create(ctx context.Context, userID int64) (*OrderOutcome, error)
	Cancel(ctx context.Context, actor *entity.User, orderID int64) (*entity.Order, error)
	ChangeStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error)
	ListMine(ctx context.Context, userID int64) ([]entity.Order, error)
	ListAll(ctx context.Context, page OrderPage) ([]entity.Order, error)
	ListForUser(ctx context.Context, userID int64, page OrderPage) ([]entity.Order, error)
	GetByID(ctx context.Context, orderID int64) (*entity.Order, error)
}

type AddAddress struct {
	LineOne string
	LineTwo string
	City    string
	Country string
	PinCode string
}

// UpdateProfile updates the caller's name and/or default address pointers.
// Nil fields are left untouched.
type UpdateProfile struct {
	Name                   *string
	DefaultShippingAddress *int64
	DefaultBillingAddress  *int64
}

type UserService interface {
	AddAddress(ctx context.Context, userID int64, in AddAddress) (*entity.Address, error)
	ListAddresses(ctx context.Context, userID int64) ([]entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID int64) error
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfile) (*entity.User, error)
	ChangeRole(ctx context.Context, userID int64, role entity.Role) (*entity.User, error)
	List(ctx context.Context, skip, take int) ([]entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
