package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/model"
)

func seedBusiness(t *testing.T, m *Memory) *model.Business {
	t.Helper()
	b := &model.Business{Name: "B", OwnerName: "O", Email: "b@x.test", Type: "misc", URLSlug: "b", Status: model.BusinessActive}
	require.NoError(t, m.CreateBusiness(context.Background(), b))
	return b
}

func TestMemoryCreateAppointmentAtomicity(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	a := &model.Appointment{ServiceID: 1, ClientID: 1, BusinessID: b.ID, Date: time.Now(), Status: model.StatusPending}
	n := &model.Notification{UserID: 1, Title: "t", Message: "m", Type: "appointment_created"}

	gateErr := errors.New("rejected")
	err := m.CreateAppointment(ctx, a, n, func(model.Business) error { return gateErr })
	assert.ErrorIs(t, err, gateErr)

	// nothing written on gate failure
	got, err := m.GetBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, got.AppointmentCount)
	ns, err := m.ListNotificationsByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ns)

	require.NoError(t, m.CreateAppointment(ctx, a, n, func(model.Business) error { return nil }))
	got, err = m.GetBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.AppointmentCount)
	assert.Equal(t, a.ID, n.AppointmentID)
}

func TestMemoryAppointmentOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	noGate := func(model.Business) error { return nil }
	dates := []time.Time{
		time.Date(2026, 9, 3, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		a := &model.Appointment{ServiceID: 1, ClientID: 5, BusinessID: b.ID, Date: d, Status: model.StatusPending}
		n := &model.Notification{UserID: 5, Title: "t", Message: "m", Type: "appointment_created"}
		require.NoError(t, m.CreateAppointment(ctx, a, n, noGate))
	}

	// ascending by date
	out, err := m.ListAppointmentsByClient(ctx, 5)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.True(t, out[0].Date.Before(out[1].Date))
	assert.True(t, out[1].Date.Before(out[2].Date))

	byBusiness, err := m.ListAppointmentsByBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, out, byBusiness)
}

func TestMemoryNotificationOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	noGate := func(model.Business) error { return nil }
	for i := 0; i < 3; i++ {
		a := &model.Appointment{ServiceID: 1, ClientID: 1, BusinessID: b.ID, Date: time.Now(), Status: model.StatusPending}
		n := &model.Notification{UserID: 1, Title: "t", Message: "m", Type: "appointment_created"}
		require.NoError(t, m.CreateAppointment(ctx, a, n, noGate))
	}

	// most recent first; same-timestamp entries fall back to id desc
	out, err := m.ListNotificationsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Greater(t, out[0].ID, out[1].ID)
	assert.Greater(t, out[1].ID, out[2].ID)
}

func TestMemoryUpdateStatusWritesNotificationAtomically(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	a := &model.Appointment{ServiceID: 1, ClientID: 1, BusinessID: b.ID, Date: time.Now(), Status: model.StatusPending}
	created := &model.Notification{UserID: 1, Title: "t", Message: "m", Type: "appointment_created"}
	require.NoError(t, m.CreateAppointment(ctx, a, created, func(model.Business) error { return nil }))

	// a missing appointment writes nothing, notification included
	orphan := &model.Notification{UserID: 2, Title: "t", Message: "m", Type: "appointment_confirmed"}
	_, err := m.UpdateAppointmentStatus(ctx, 9999, model.StatusConfirmed, orphan)
	assert.ErrorIs(t, err, ErrNotFound)
	ns, err := m.ListNotificationsByUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, ns)

	n := &model.Notification{UserID: 2, Title: "t", Message: "m", Type: "appointment_confirmed"}
	got, err := m.UpdateAppointmentStatus(ctx, a.ID, model.StatusConfirmed, n)
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	ns, err = m.ListNotificationsByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, a.ID, ns[0].AppointmentID)

	// nil notification: status-only write
	_, err = m.UpdateAppointmentStatus(ctx, a.ID, model.StatusPending, nil)
	require.NoError(t, err)
	ns, err = m.ListNotificationsByUser(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, ns, 1)
}

func TestMemoryDeleteUserClearsHistory(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	u := &model.User{Name: "C", Email: "c@x.test", PasswordHash: "h", Role: model.RoleClient}
	require.NoError(t, m.CreateUser(ctx, u))

	a := &model.Appointment{ServiceID: 1, ClientID: u.ID, BusinessID: b.ID, Date: time.Now(), Status: model.StatusPending}
	n := &model.Notification{UserID: u.ID, Title: "t", Message: "m", Type: "appointment_created"}
	require.NoError(t, m.CreateAppointment(ctx, a, n, func(model.Business) error { return nil }))
	_, err := m.CreateRefreshToken(ctx, u.ID, "hash", time.Now().Add(time.Hour))
	require.NoError(t, err)

	// a user with booking history is still deletable
	require.NoError(t, m.DeleteUser(ctx, u.ID))

	// the appointment survives with its client reference cleared
	appts, err := m.ListAppointmentsByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Zero(t, appts[0].ClientID)

	ns, err := m.ListNotificationsByUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, ns)
	_, err = m.GetRefreshTokenByHash(ctx, "hash")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateBusinessPreservesCounter(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	a := &model.Appointment{ServiceID: 1, ClientID: 1, BusinessID: b.ID, Date: time.Now(), Status: model.StatusPending}
	n := &model.Notification{UserID: 1, Title: "t", Message: "m", Type: "x"}
	require.NoError(t, m.CreateAppointment(ctx, a, n, func(model.Business) error { return nil }))

	b.Name = "Renamed"
	b.AppointmentCount = 0 // callers cannot reset the counter
	require.NoError(t, m.UpdateBusiness(ctx, b))

	got, err := m.GetBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 1, got.AppointmentCount)
}

func TestMemoryEmailCaseInsensitive(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	u := &model.User{Name: "A", Email: "User@Example.test", PasswordHash: "h", Role: model.RoleClient}
	require.NoError(t, m.CreateUser(ctx, u))
	assert.Equal(t, "user@example.test", u.Email)

	dup := &model.User{Name: "B", Email: "USER@example.test", PasswordHash: "h", Role: model.RoleClient}
	assert.ErrorIs(t, m.CreateUser(ctx, dup), ErrDuplicate)

	got, err := m.GetUserByEmail(ctx, "user@EXAMPLE.test")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestMemoryOwnerOfBusiness(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	b := seedBusiness(t, m)

	_, err := m.OwnerOfBusiness(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	first := &model.User{Name: "O1", Email: "o1@x.test", PasswordHash: "h", Role: model.RoleOwner, BusinessID: b.ID}
	require.NoError(t, m.CreateUser(ctx, first))
	second := &model.User{Name: "O2", Email: "o2@x.test", PasswordHash: "h", Role: model.RoleOwner, BusinessID: b.ID}
	require.NoError(t, m.CreateUser(ctx, second))

	// earliest registered owner wins
	got, err := m.OwnerOfBusiness(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestMemoryRefreshTokenRotation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	id, err := m.CreateRefreshToken(ctx, 1, "hash-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	rt, err := m.GetRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, id, rt.ID)
	assert.False(t, rt.Revoked)

	require.NoError(t, m.RotateRefreshToken(ctx, id, "new-id", 1, "hash-2", time.Now().Add(time.Hour)))

	old, err := m.GetRefreshTokenByHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.True(t, old.Revoked)
	require.NotNil(t, old.ReplacedBy)
	assert.Equal(t, "new-id", *old.ReplacedBy)

	fresh, err := m.GetRefreshTokenByHash(ctx, "hash-2")
	require.NoError(t, err)
	assert.False(t, fresh.Revoked)

	require.NoError(t, m.RevokeAllRefreshTokens(ctx, 1))
	fresh, err = m.GetRefreshTokenByHash(ctx, "hash-2")
	require.NoError(t, err)
	assert.True(t, fresh.Revoked)
}
