package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/pkg/token"
)

func TestSignUpAndLogIn(t *testing.T) {
	db := newTestDB(t)
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(db, tokens)

	user, err := svc.SignUp(context.Background(), "Ana", "ana@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", user.Password, "password must be stored hashed")

	loggedIn, signed, err := svc.LogIn(context.Background(), "ana@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	subject, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, subject)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(db, tokens)

	_, err := svc.SignUp(context.Background(), "Ana", "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), "Other Ana", "ana@example.com", "different")
	requireKind(t, err, apperr.KindConflict)
	requireCode(t, err, apperr.CodeUserExists)
}

func TestLogInRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	tokens := token.NewManager("test-secret", time.Hour)
	svc := NewAuthService(db, tokens)

	_, _, err := svc.LogIn(context.Background(), "ghost@example.com", "whatever")
	requireKind(t, err, apperr.KindUnauthorized)
	requireCode(t, err, apperr.CodeUserNotFound)

	_, err2 := svc.SignUp(context.Background(), "Ana", "ana@example.com", "hunter22")
	require.NoError(t, err2)

	_, _, err = svc.LogIn(context.Background(), "ana@example.com", "wrong")
	requireKind(t, err, apperr.KindUnauthorized)
	requireCode(t, err, apperr.CodeIncorrectPassword)
}
