package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

var _ ports.UserService = (*userService)(nil)

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) ports.UserService {
	return &userService{db: db}
}

func (s *userService) AddAddress(ctx context.Context, userID int64, in ports.AddAddress) (*entity.Address, error) {
	address := entity.Address{
		UserID:  userID,
		LineOne: in.LineOne,
		LineTwo: in.LineTwo,
		City:    in.City,
		Country: in.Country,
		PinCode: in.PinCode,
	}
	if err := s.db.WithContext(ctx).Create(&address).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &address, nil
}

func (s *userService) ListAddresses(ctx context.Context, userID int64) ([]entity.Address, error) {
	var addresses []entity.Address
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return addresses, nil
}

// DeleteAddress removes a caller-owned address. Any user default pointers
// still referencing it are nulled out in the same transaction, so a deleted
// address can never linger as a dangling default.
func (s *userService) DeleteAddress(ctx context.Context, userID, addressID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var address entity.Address
		if err := tx.First(&address, addressID).Error; err != nil {
			return err
		}
		if address.UserID != userID {
			return apperr.Forbidden(apperr.CodeAddressNotOwned, "Address does not belong to the user")
		}

		if err := tx.Model(&entity.User{}).
			Where("default_shipping_address_id = ?", addressID).
			Update("default_shipping_address_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&entity.User{}).
			Where("default_billing_address_id = ?", addressID).
			Update("default_billing_address_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&address).Error
	})
	if err != nil {
		return classify(err, apperr.CodeAddressNotFound, "Address not found")
	}
	return nil
}

// UpdateProfile sets the caller's name and/or default address pointers. A
// default must reference an existing address owned by the caller.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, in ports.UpdateProfile) (*entity.User, error) {
	var user entity.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		if in.DefaultShippingAddress != nil {
			if err := s.checkOwnedAddress(tx, userID, *in.DefaultShippingAddress); err != nil {
				return err
			}
			user.DefaultShippingAddressID = in.DefaultShippingAddress
		}
		if in.DefaultBillingAddress != nil {
			if err := s.checkOwnedAddress(tx, userID, *in.DefaultBillingAddress); err != nil {
				return err
			}
			user.DefaultBillingAddressID = in.DefaultBillingAddress
		}
		if in.Name != nil {
			user.Name = *in.Name
		}

		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, classify(err, apperr.CodeUserNotFound, "User not found")
	}
	return &user, nil
}

func (s *userService) ChangeRole(ctx context.Context, userID int64, role entity.Role) (*entity.User, error) {
	var user entity.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, classify(err, apperr.CodeUserNotFound, "User not found")
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	user.Role = role
	return &user, nil
}

func (s *userService) List(ctx context.Context, skip, take int) ([]entity.User, error) {
	skip, take = normalizePage(skip, take)

	var users []entity.User
	if err := s.db.WithContext(ctx).Offset(skip).Limit(take).Find(&users).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := s.db.WithContext(ctx).Preload("Addresses").First(&user, id).Error
	if err != nil {
		return nil, classify(err, apperr.CodeUserNotFound, "User not found")
	}
	return &user, nil
}

func (s *userService) checkOwnedAddress(tx *gorm.DB, userID, addressID int64) error {
	var address entity.Address
	if err := tx.First(&address, addressID).Error; err != nil {
		return classify(err, apperr.CodeAddressNotFound, "Address not found")
	}
	if address.UserID != userID {
		return apperr.Forbidden(apperr.CodeAddressNotOwned, "Address does not belong to the user")
	}
	return nil
}
