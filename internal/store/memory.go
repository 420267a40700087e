package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"agendahub/internal/model"
)

// Memory is the map-backed Store. A single mutex covers every operation, so
// the create-appointment triple (insert, counter increment, notification) is
// atomic the same way the Postgres transaction is.
type Memory struct {
	mu sync.Mutex

	users         map[int64]model.User
	businesses    map[int64]model.Business
	services      map[int64]model.Service
	appointments  map[int64]model.Appointment
	notifications map[int64]model.Notification
	refreshTokens map[string]RefreshToken

	nextUserID         int64
	nextBusinessID     int64
	nextServiceID      int64
	nextAppointmentID  int64
	nextNotificationID int64
}

func NewMemory() *Memory {
	return &Memory{
		users:         make(map[int64]model.User),
		businesses:    make(map[int64]model.Business),
		services:      make(map[int64]model.Service),
		appointments:  make(map[int64]model.Appointment),
		notifications: make(map[int64]model.Notification),
		refreshTokens: make(map[string]RefreshToken),
	}
}

var _ Store = (*Memory)(nil)

// --- users ---

func (m *Memory) CreateUser(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(u.Email)
	for _, other := range m.users {
		if other.Email == email {
			return ErrDuplicate
		}
	}

	m.nextUserID++
	u.ID = m.nextUserID
	u.Email = email
	u.CreatedAt = time.Now()
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) GetUser(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email = strings.ToLower(email)
	for _, u := range m.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateUser(ctx context.Context, u *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[u.ID]; !ok {
		return ErrNotFound
	}
	email := strings.ToLower(u.Email)
	for _, other := range m.users {
		if other.ID != u.ID && other.Email == email {
			return ErrDuplicate
		}
	}
	u.Email = email
	m.users[u.ID] = *u
	return nil
}

// DeleteUser removes the account together with its notifications and refresh
// tokens; the user's appointments stay, with the client reference cleared.
func (m *Memory) DeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	for nid, n := range m.notifications {
		if n.UserID == id {
			delete(m.notifications, nid)
		}
	}
	for aid, a := range m.appointments {
		if a.ClientID == id {
			a.ClientID = 0
			m.appointments[aid] = a
		}
	}
	for tid, rt := range m.refreshTokens {
		if rt.UserID == id {
			delete(m.refreshTokens, tid)
		}
	}
	return nil
}

func (m *Memory) OwnerOfBusiness(ctx context.Context, businessID int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found *model.User
	for _, u := range m.users {
		if u.Role == model.RoleOwner && u.BusinessID == businessID {
			u := u
			if found == nil || u.ID < found.ID {
				found = &u
			}
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// --- businesses ---

func (m *Memory) CreateBusiness(ctx context.Context, b *model.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, other := range m.businesses {
		if other.URLSlug == b.URLSlug {
			return ErrDuplicate
		}
	}

	m.nextBusinessID++
	b.ID = m.nextBusinessID
	b.AppointmentCount = 0
	b.CreatedAt = time.Now()
	m.businesses[b.ID] = *b
	return nil
}

func (m *Memory) GetBusiness(ctx context.Context, id int64) (*model.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.businesses[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (m *Memory) GetBusinessBySlug(ctx context.Context, slug string) (*model.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.businesses {
		if b.URLSlug == slug {
			b := b
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListBusinessesByStatus(ctx context.Context, status model.BusinessStatus) ([]model.Business, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Business
	for _, b := range m.businesses {
		if b.Status == status {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateBusiness(ctx context.Context, b *model.Business) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.businesses[b.ID]
	if !ok {
		return ErrNotFound
	}
	// counter is owned by CreateAppointment
	b.AppointmentCount = cur.AppointmentCount
	b.CreatedAt = cur.CreatedAt
	m.businesses[b.ID] = *b
	return nil
}

// --- services ---

func (m *Memory) CreateService(ctx context.Context, sv *model.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextServiceID++
	sv.ID = m.nextServiceID
	m.services[sv.ID] = *sv
	return nil
}

func (m *Memory) GetService(ctx context.Context, id int64) (*model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sv, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &sv, nil
}

func (m *Memory) ListServicesByBusiness(ctx context.Context, businessID int64) ([]model.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Service
	for _, sv := range m.services {
		if sv.BusinessID == businessID {
			out = append(out, sv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) UpdateService(ctx context.Context, sv *model.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.services[sv.ID]
	if !ok {
		return ErrNotFound
	}
	sv.BusinessID = cur.BusinessID
	m.services[sv.ID] = *sv
	return nil
}

func (m *Memory) DeleteService(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.services[id]; !ok {
		return ErrNotFound
	}
	delete(m.services, id)
	return nil
}

// --- appointments ---

func (m *Memory) CreateAppointment(ctx context.Context, a *model.Appointment, n *model.Notification, gate func(model.Business) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.businesses[a.BusinessID]
	if !ok {
		return ErrNotFound
	}
	if err := gate(b); err != nil {
		return err
	}

	now := time.Now()
	m.nextAppointmentID++
	a.ID = m.nextAppointmentID
	a.CreatedAt = now
	a.UpdatedAt = now
	m.appointments[a.ID] = *a

	b.AppointmentCount++
	m.businesses[b.ID] = b

	m.nextNotificationID++
	n.ID = m.nextNotificationID
	n.AppointmentID = a.ID
	n.Read = false
	n.CreatedAt = now
	m.notifications[n.ID] = *n

	return nil
}

func (m *Memory) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}

func (m *Memory) ListAppointmentsByClient(ctx context.Context, clientID int64) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Appointment
	for _, a := range m.appointments {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func (m *Memory) ListAppointmentsByBusiness(ctx context.Context, businessID int64) ([]model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Appointment
	for _, a := range m.appointments {
		if a.BusinessID == businessID {
			out = append(out, a)
		}
	}
	sortAppointments(out)
	return out, nil
}

func sortAppointments(out []model.Appointment) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
}

// UpdateAppointmentStatus applies the status write and the transition
// notification under the same lock; nothing is written when the appointment
// is missing.
func (m *Memory) UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus, n *model.Notification) (*model.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return nil, ErrNotFound
	}
	a.Status = status
	a.UpdatedAt = time.Now()
	m.appointments[id] = a

	if n != nil {
		m.nextNotificationID++
		n.ID = m.nextNotificationID
		n.AppointmentID = a.ID
		n.Read = false
		n.CreatedAt = time.Now()
		m.notifications[n.ID] = *n
	}
	return &a, nil
}

// --- notifications ---

func (m *Memory) GetNotification(ctx context.Context, id int64) (*model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &n, nil
}

func (m *Memory) ListNotificationsByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	// most recent first
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *Memory) MarkNotificationRead(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.Read = true
	m.notifications[id] = n
	return nil
}

// --- refresh tokens ---

func (m *Memory) CreateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.refreshTokens[id] = RefreshToken{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *Memory) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rt := range m.refreshTokens {
		if rt.TokenHash == tokenHash {
			rt := rt
			return &rt, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) RotateRefreshToken(ctx context.Context, oldID, newID string, userID int64, newHash string, newExpiry time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.refreshTokens[oldID]; ok {
		old.Revoked = true
		old.ReplacedBy = &newID
		m.refreshTokens[oldID] = old
	}
	m.refreshTokens[newID] = RefreshToken{
		ID:        newID,
		UserID:    userID,
		TokenHash: newHash,
		ExpiresAt: newExpiry,
		CreatedAt: time.Now(),
	}
	return nil
}

func (m *Memory) RevokeAllRefreshTokens(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, rt := range m.refreshTokens {
		if rt.UserID == userID && !rt.Revoked {
			rt.Revoked = true
			m.refreshTokens[id] = rt
		}
	}
	return nil
}
