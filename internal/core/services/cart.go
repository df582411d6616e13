package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

var _ ports.CartService = (*cartService)(nil)

type cartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) ports.CartService {
	return &cartService{db: db}
}

// AddItem validates the product and appends a cart row. Duplicate products
// are not merged; each add is its own row.
func (s *cartService) AddItem(ctx context.Context, userID, productID int64, quantity int) (*entity.CartItem, error) {
	var product entity.Product
	if err := s.db.WithContext(ctx).First(&product, productID).Error; err != nil {
		return nil, classify(err, apperr.CodeProductNotFound, "Product not found")
	}

	item := entity.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Quantity:  quantity,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	item.Product = product
	return &item, nil
}

func (s *cartService) DeleteItem(ctx context.Context, userID, itemID int64) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(item).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *cartService) ChangeQuantity(ctx context.Context, userID, itemID int64, quantity int) (*entity.CartItem, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(item).Update("quantity", quantity).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	item.Quantity = quantity
	return item, nil
}

func (s *cartService) Items(ctx context.Context, userID int64) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

// ownedItem loads a cart item and enforces that it belongs to the caller.
// Mutating someone else's cart row is forbidden, not merely absent.
func (s *cartService) ownedItem(ctx context.Context, userID, itemID int64) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").First(&item, itemID).Error; err != nil {
		return nil, classify(err, apperr.CodeCartItemNotFound, "Cart item not found")
	}
	if item.UserID != userID {
		return nil, apperr.Forbidden(apperr.CodeCartItemNotOwned, "Cart item does not belong to the user")
	}
	return &item, nil
}
