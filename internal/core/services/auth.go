package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/token"
)

var _ ports.AuthService = (*authService)(nil)

const bcryptCost = 10

type authService struct {
	db     *gorm.DB
	tokens *token.Manager
}

func NewAuthService(db *gorm.DB, tokens *token.Manager) ports.AuthService {
	return &authService{db: db, tokens: tokens}
}

// SignUp registers a new user. Duplicate detection leans on the email unique
// index rather than a prior existence probe, so two concurrent signups for
// the same email cannot both slip through.
func (s *authService) SignUp(ctx context.Context, name, email, password string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := entity.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleUser,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(apperr.CodeUserExists, "User already exists")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}

// LogIn verifies the credentials and mints a token. Unknown email and wrong
// password carry distinct codes but the same message, so the response does
// not reveal which emails are registered.
func (s *authService) LogIn(ctx context.Context, email, password string) (*entity.User, string, error) {
	var user entity.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.Unauthorized(apperr.CodeUserNotFound, "Invalid email or password")
		}
		return nil, "", apperr.Internal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", apperr.Unauthorized(apperr.CodeIncorrectPassword, "Invalid email or password")
	}

	signed, err := s.tokens.Mint(user.ID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	return &user, signed, nil
}

func (s *authService) UserByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, classify(err, apperr.CodeUserNotFound, "User not found")
	}
	return &user, nil
}
