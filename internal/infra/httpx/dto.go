package httpx

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
)

type SignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LogInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AddressRequest struct {
	LineOne string `json:"lineOne" validate:"required"`
	LineTwo string `json:"lineTwo"`
	City    string `json:"city" validate:"required"`
	Country string `json:"country" validate:"required"`
	PinCode string `json:"pinCode" validate:"required,len=6"`
}

type UpdateProfileRequest struct {
	Name                   *string `json:"name" validate:"omitempty,min=1"`
	DefaultShippingAddress *int64  `json:"defaultShippingAddress"`
	DefaultBillingAddress  *int64  `json:"defaultBillingAddress"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Tags        []string        `json:"tags" validate:"required"`
}

// UpdateProductRequest is a partial update; absent fields stay untouched.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Tags        []string         `json:"tags"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type ChangeQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Fields  []apperr.FieldIssue `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LogInResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

// ProductResponse is the wire form of a product: tags leave as a list, never
// as the joined storage string.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Tags        []string        `json:"tags"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ProductPageResponse struct {
	Count int64             `json:"count"`
	Data  []ProductResponse `json:"data"`
}

type CartItemResponse struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"userId"`
	Quantity int             `json:"quantity"`
	Product  ProductResponse `json:"product"`
}

type CreateOrderResponse struct {
	Message string        `json:"message"`
	Order   *entity.Order `json:"order,omitempty"`
}

func mapProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Tags:        p.TagList(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapProducts(products []entity.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = mapProduct(&products[i])
	}
	return out
}

func mapCartItem(it *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:       it.ID,
		UserID:   it.UserID,
		Quantity: it.Quantity,
		Product:  mapProduct(&it.Product),
	}
}

func mapCartItems(items []entity.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, len(items))
	for i := range items {
		out[i] = mapCartItem(&items[i])
	}
	return out
}
