package entity

import "time"

// CartItem is one (product, quantity) line in a user's cart. Adding the same
// product twice creates two rows; lines are never merged.
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64 `gorm:"not null;index" json:"userId"`
	ProductID int64 `gorm:"not null" json:"productId"`
	Quantity  int   `gorm:"not null" json:"quantity"`

	Product Product `gorm:"foreignKey:ProductID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
