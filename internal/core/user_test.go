package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/model"
)

func TestRegisterUserDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.c.RegisterUser(ctx, RegisterParams{
		Name: "Outra Maria", Email: "MARIA@cliente.test", PasswordHash: "x", Role: model.RoleClient,
	})
	// emails compare case-insensitively
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRegisterUserBusinessLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// only owners carry a business link
	u, err := f.c.RegisterUser(ctx, RegisterParams{
		Name: "Carlos", Email: "carlos@cliente.test", PasswordHash: "x",
		Role: model.RoleClient, BusinessID: f.business.ID,
	})
	require.NoError(t, err)
	assert.Zero(t, u.BusinessID)

	_, err = f.c.RegisterUser(ctx, RegisterParams{
		Name: "Dono Fantasma", Email: "ghost@x.test", PasswordHash: "x",
		Role: model.RoleOwner, BusinessID: 9999,
	})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRegisterUserInvalidRole(t *testing.T) {
	f := newFixture(t)
	_, err := f.c.RegisterUser(context.Background(), RegisterParams{
		Name: "X", Email: "x@x.test", PasswordHash: "x", Role: "superuser",
	})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestUserAdminGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.c.ListUsers(ctx, f.client)
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = f.c.GetUser(ctx, f.owner, f.client.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	users, err := f.c.ListUsers(ctx, f.admin)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	name := "Maria Silva"
	u, err := f.c.UpdateUser(ctx, f.admin, f.client.ID, UpdateUserParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, u.Name)

	// cannot take another account's email
	taken := "joao@central.test"
	_, err = f.c.UpdateUser(ctx, f.admin, f.client.ID, UpdateUserParams{Email: &taken})
	assert.ErrorIs(t, err, ErrBadRequest)

	bad := model.Role("root")
	_, err = f.c.UpdateUser(ctx, f.admin, f.client.ID, UpdateUserParams{Role: &bad})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// an admin never deletes their own account
	err := f.c.DeleteUser(ctx, f.admin, f.admin.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.c.DeleteUser(ctx, f.owner, f.client.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// booking history does not block deletion
	f.book(t)
	require.NoError(t, f.c.DeleteUser(ctx, f.admin, f.client.ID))
	_, err = f.c.GetUser(ctx, f.admin, f.client.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the business keeps the appointment, minus the client link
	appts, err := f.c.ListAppointments(ctx, f.owner, 0)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Zero(t, appts[0].ClientID)

	err = f.c.DeleteUser(ctx, f.admin, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
