package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agendahub/internal/model"
	"agendahub/internal/store"
)

// fixture is a small booked-up tenant: an admin, a business with one
// registered owner account, one service and one client.
type fixture struct {
	c *Core
	m *store.Memory

	admin  Principal
	owner  Principal
	client Principal

	business *model.Business
	service  *model.Service
}

func principalFor(u *model.User) Principal {
	return Principal{ID: u.ID, Role: u.Role, BusinessID: u.BusinessID}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	m := store.NewMemory()
	c := New(m, nil)

	admin, err := c.RegisterUser(ctx, RegisterParams{
		Name: "Admin", Email: "admin@agendahub.test", PasswordHash: "x", Role: model.RoleAdmin,
	})
	require.NoError(t, err)

	b, err := c.CreateBusiness(ctx, principalFor(admin), CreateBusinessParams{
		Name: "Barbearia Central", OwnerName: "João", Email: "contato@central.test", Type: "barbershop",
	})
	require.NoError(t, err)

	owner, err := c.RegisterUser(ctx, RegisterParams{
		Name: "João", Email: "joao@central.test", PasswordHash: "x",
		Role: model.RoleOwner, BusinessID: b.ID,
	})
	require.NoError(t, err)

	sv, err := c.CreateService(ctx, principalFor(owner), CreateServiceParams{
		Name: "Corte", Price: 5000, Duration: 30, BusinessID: b.ID,
	})
	require.NoError(t, err)

	client, err := c.RegisterUser(ctx, RegisterParams{
		Name: "Maria", Email: "maria@cliente.test", PasswordHash: "x", Role: model.RoleClient,
	})
	require.NoError(t, err)

	return &fixture{
		c: c, m: m,
		admin:  principalFor(admin),
		owner:  principalFor(owner),
		client: principalFor(client),

		business: b,
		service:  sv,
	}
}

// book creates one pending appointment as the fixture's client.
func (f *fixture) book(t *testing.T) *model.Appointment {
	t.Helper()
	a, err := f.c.CreateAppointment(context.Background(), f.client, CreateAppointmentParams{
		ServiceID: f.service.ID,
		Date:      time.Date(2026, 9, 15, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return a
}

func (f *fixture) notificationsFor(t *testing.T, p Principal) []model.Notification {
	t.Helper()
	out, err := f.m.ListNotificationsByUser(context.Background(), p.ID)
	require.NoError(t, err)
	return out
}
