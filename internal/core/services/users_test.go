package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-api/internal/core/domain/apperr"
	"github.com/jcmexdev/ecommerce-api/internal/core/domain/entity"
	"github.com/jcmexdev/ecommerce-api/internal/core/ports"
)

func TestUpdateProfileRejectsForeignDefaultAddress(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	owner := seedUser(t, db, "owner@example.com", entity.RoleUser)
	other := seedUser(t, db, "other@example.com", entity.RoleUser)
	foreign := seedAddress(t, db, other.ID)

	_, err := svc.UpdateProfile(context.Background(), owner.ID, ports.UpdateProfile{
		DefaultShippingAddress: &foreign.ID,
	})
	requireKind(t, err, apperr.KindForbidden)
	requireCode(t, err, apperr.CodeAddressNotOwned)

	missing := int64(999)
	_, err = svc.UpdateProfile(context.Background(), owner.ID, ports.UpdateProfile{
		DefaultBillingAddress: &missing,
	})
	requireKind(t, err, apperr.KindNotFound)
}

func TestUpdateProfileSetsDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := seedUser(t, db, "user@example.com", entity.RoleUser)
	address := seedAddress(t, db, user.ID)
	name := "Renamed"

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfile{
		Name:                   &name,
		DefaultShippingAddress: &address.ID,
		DefaultBillingAddress:  &address.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	require.NotNil(t, updated.DefaultShippingAddressID)
	assert.Equal(t, address.ID, *updated.DefaultShippingAddressID)
}

func TestDeleteAddressNullsDanglingDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := seedUser(t, db, "user@example.com", entity.RoleUser)
	address := seedAddress(t, db, user.ID)
	_, err := svc.UpdateProfile(context.Background(), user.ID, ports.UpdateProfile{
		DefaultShippingAddress: &address.ID,
		DefaultBillingAddress:  &address.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(context.Background(), user.ID, address.ID))

	var reloaded entity.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Nil(t, reloaded.DefaultShippingAddressID)
	assert.Nil(t, reloaded.DefaultBillingAddressID)
}

func TestDeleteAddressOwnershipAndExistence(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	owner := seedUser(t, db, "owner@example.com", entity.RoleUser)
	stranger := seedUser(t, db, "stranger@example.com", entity.RoleUser)
	address := seedAddress(t, db, owner.ID)

	err := svc.DeleteAddress(context.Background(), stranger.ID, address.ID)
	requireKind(t, err, apperr.KindForbidden)

	err = svc.DeleteAddress(context.Background(), owner.ID, 999)
	requireKind(t, err, apperr.KindNotFound)
}

func TestChangeRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := seedUser(t, db, "user@example.com", entity.RoleUser)
	updated, err := svc.ChangeRole(context.Background(), user.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	_, err = svc.ChangeRole(context.Background(), 999, entity.RoleAdmin)
	requireKind(t, err, apperr.KindNotFound)
}

func TestGetByIDIncludesAddresses(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user := seedUser(t, db, "user@example.com", entity.RoleUser)
	seedAddress(t, db, user.ID)
	seedAddress(t, db, user.ID)

	got, err := svc.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, got.Addresses, 2)
}

func TestListUsersPagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	for i := 0; i < 7; i++ {
		seedUser(t, db, "user"+string(rune('a'+i))+"@example.com", entity.RoleUser)
	}

	users, err := svc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, users, 5)
}
