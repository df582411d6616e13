package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

// Ensure orderService implements the port at compile time.
var _ ports.OrderService = (*orderService)(nil)

// errAbortCreate forces a rollback for the two informational early exits.
// Nothing has been written when it is returned, but aborting keeps the whole
// sequence one atomic unit regardless of where it stops.
var errAbortCreate = errors.New("order creation aborted")

type orderService struct {
	db *gorm.DB

	// strictTransitions rejects status changes out of a terminal state.
	// Off by default to preserve the historical permissive behavior.
	strictTransitions bool
}

func NewOrderService(db *gorm.DB, strictTransitions bool) ports.OrderService {
	return &orderService{db: db, strictTransitions: strictTransitions}
}

// Create converts the user's cart into an order inside one transaction:
// read the cart, sum the line prices, snapshot the default shipping
// address, write the order with its line items and initial event, and clear
// the cart. An empty cart or an unresolvable address aborts with an
// informational outcome, not an error; any other failure rolls back and
// surfaces as an internal fault.
func (s *orderService) Create(ctx context.Context, userID int64) (*ports.OrderOutcome, error) {
	var outcome ports.OrderOutcome

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Preload("Product").Where("user_id = ?", userID)
		if tx.Dialector.Name() == "postgres" {
			// Lock the cart rows so a concurrent add/remove for the same
			// user cannot be half-visible while we compute the total.
			// SQLite serializes writers anyway and has no FOR UPDATE.
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var items []entity.CartItem
		if err := q.Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			outcome = ports.OrderOutcome{Message: "Cart is empty"}
			return errAbortCreate
		}

		// Decimal end to end: float arithmetic on prices is a known hazard.
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		var user entity.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.DefaultShippingAddressID == nil {
			outcome = ports.OrderOutcome{Message: "Address not found"}
			return errAbortCreate
		}

		var addr entity.Address
		if err := tx.First(&addr, *user.DefaultShippingAddressID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// A dangling default pointer gets the same informational
				// exit as an unset one, never a hard failure.
				outcome = ports.OrderOutcome{Message: "Address not found"}
				return errAbortCreate
			}
			return err
		}

		lines := make([]entity.OrderProduct, len(items))
		for i, it := range items {
			lines[i] = entity.OrderProduct{ProductID: it.ProductID, Quantity: it.Quantity}
		}

		order := entity.Order{
			UserID:    userID,
			Reference: uuid.NewString(),
			NetAmount: total,
			Address:   addr.Formatted(),
			Status:    entity.OrderPending,
			Products:  lines,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Create(&entity.OrderEvent{OrderID: order.ID, Status: entity.OrderPending}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}

		outcome = ports.OrderOutcome{Order: &order, Message: "Order created successfully"}
		return nil
	})

	if err != nil && !errors.Is(err, errAbortCreate) {
		return nil, apperr.Internal(err)
	}
	return &outcome, nil
}

// Cancel moves an order to CANCELLED and appends an event. It is not
// idempotent: cancelling twice appends two events.
func (s *orderService) Cancel(ctx context.Context, actor *entity.User, orderID int64) (*entity.Order, error) {
	var order entity.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if order.UserID != actor.ID && !actor.IsAdmin() {
			return apperr.Forbidden(apperr.CodeOrderNotOwned, "Order does not belong to the user")
		}

		if err := tx.Model(&order).Update("status", entity.OrderCancelled).Error; err != nil {
			return err
		}
		order.Status = entity.OrderCancelled

		return tx.Create(&entity.OrderEvent{OrderID: order.ID, Status: entity.OrderCancelled}).Error
	})
	if err != nil {
		return nil, classify(err, apperr.CodeOrderNotFound, "Order not found")
	}
	return &order, nil
}

// ChangeStatus sets an order to any status in the vocabulary and appends an
// event. The handler has already validated the status string; legality of
// the transition itself is only checked in strict mode.
func (s *orderService) ChangeStatus(ctx context.Context, orderID int64, status entity.OrderStatus) (*entity.Order, error) {
	var order entity.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if s.strictTransitions && order.Status.Terminal() && status != order.Status {
			return apperr.Validation(apperr.CodeIllegalTransition,
				fmt.Sprintf("cannot change status of a %s order", order.Status))
		}

		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return err
		}
		order.Status = status

		return tx.Create(&entity.OrderEvent{OrderID: order.ID, Status: status}).Error
	})
	if err != nil {
		return nil, classify(err, apperr.CodeOrderNotFound, "Order not found")
	}
	return &order, nil
}

func (s *orderService) ListMine(ctx context.Context, userID int64) ([]entity.Order, error) {
	var orders []entity.Order
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

func (s *orderService) ListAll(ctx context.Context, page ports.OrderPage) ([]entity.Order, error) {
	skip, take := normalizePage(page.Skip, page.Take)

	q := s.db.WithContext(ctx).Offset(skip).Limit(take)
	if page.Status != nil {
		q = q.Where("status = ?", *page.Status)
	}

	var orders []entity.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

// ListForUser is the privileged per-user listing. take is clamped to
// [1, 50] and skip floored at 0 regardless of input; newest first.
func (s *orderService) ListForUser(ctx context.Context, userID int64, page ports.OrderPage) ([]entity.Order, error) {
	skip, take := page.Skip, page.Take
	if skip < 0 {
		skip = 0
	}
	if take < 1 {
		take = 1
	}
	if take > maxTake {
		take = maxTake
	}

	q := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(skip).
		Limit(take)
	if page.Status != nil {
		q = q.Where("status = ?", *page.Status)
	}

	var orders []entity.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID int64) (*entity.Order, error) {
	var order entity.Order
	err := s.db.WithContext(ctx).
		Preload("Products").
		Preload("Events").
		First(&order, orderID).Error
	if err != nil {
		return nil, classify(err, apperr.CodeOrderNotFound, "Order not found")
	}
	return &order, nil
}
