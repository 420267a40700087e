package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/model"
)

func TestCreateBusinessAdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	params := CreateBusinessParams{Name: "Salão Novo", OwnerName: "Ana", Email: "ana@novo.test", Type: "salon"}
	for _, p := range []Principal{f.owner, f.client} {
		_, err := f.c.CreateBusiness(ctx, p, params)
		assert.ErrorIs(t, err, ErrForbidden)
	}

	b, err := f.c.CreateBusiness(ctx, f.admin, params)
	require.NoError(t, err)
	assert.Equal(t, model.BusinessActive, b.Status)
	assert.Equal(t, "salão-novo", b.URLSlug)
	assert.Equal(t, 0, b.AppointmentCount)
	assert.False(t, b.IsPremium)
}

func TestCreateBusinessRequiredFields(t *testing.T) {
	f := newFixture(t)
	_, err := f.c.CreateBusiness(context.Background(), f.admin, CreateBusinessParams{Name: "Sem Email"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestSlugCollisionGetsSuffix(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var slugs []string
	for i := 0; i < 3; i++ {
		b, err := f.c.CreateBusiness(ctx, f.admin, CreateBusinessParams{
			Name: "Studio Foco", OwnerName: "Ana", Email: "ana@foco.test", Type: "studio",
		})
		require.NoError(t, err)
		slugs = append(slugs, b.URLSlug)
	}
	assert.Equal(t, []string{"studio-foco", "studio-foco-1", "studio-foco-2"}, slugs)
}

func TestSlugFallbackForEmptyName(t *testing.T) {
	f := newFixture(t)
	b, err := f.c.CreateBusiness(context.Background(), f.admin, CreateBusinessParams{
		Name: "!!!", OwnerName: "Ana", Email: "ana@x.test", Type: "misc",
	})
	require.NoError(t, err)
	assert.Equal(t, "estabelecimento", b.URLSlug)
}

func TestSlugStableAcrossRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	name := "Barbearia Renomeada"
	b, err := f.c.UpdateBusiness(ctx, f.admin, f.business.ID, UpdateBusinessParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, b.Name)
	assert.Equal(t, f.business.URLSlug, b.URLSlug)
}

func TestUpdateBusinessStatusValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	bad := model.BusinessStatus("frozen")
	_, err := f.c.UpdateBusiness(ctx, f.admin, f.business.ID, UpdateBusinessParams{Status: &bad})
	assert.ErrorIs(t, err, ErrBadRequest)

	ok := model.BusinessPending
	b, err := f.c.UpdateBusiness(ctx, f.admin, f.business.ID, UpdateBusinessParams{Status: &ok})
	require.NoError(t, err)
	assert.Equal(t, model.BusinessPending, b.Status)
}

func TestDeactivateBusiness(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.c.DeactivateBusiness(ctx, f.owner, f.business.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	b, err := f.c.DeactivateBusiness(ctx, f.admin, f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BusinessInactive, b.Status)

	// soft delete: the record stays fetchable
	got, err := f.c.GetBusiness(ctx, f.business.ID)
	require.NoError(t, err)
	assert.Equal(t, model.BusinessInactive, got.Status)
}

func TestListBusinessesFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.c.DeactivateBusiness(ctx, f.admin, f.business.ID)
	require.NoError(t, err)

	active, err := f.c.ListBusinesses(ctx, model.BusinessActive)
	require.NoError(t, err)
	assert.Empty(t, active)

	inactive, err := f.c.ListBusinesses(ctx, model.BusinessInactive)
	require.NoError(t, err)
	assert.Len(t, inactive, 1)
}

func TestGetBusinessBySlug(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b, err := f.c.GetBusinessBySlug(ctx, f.business.URLSlug)
	require.NoError(t, err)
	assert.Equal(t, f.business.ID, b.ID)

	_, err = f.c.GetBusinessBySlug(ctx, "nao-existe")
	assert.ErrorIs(t, err, ErrNotFound)
}
