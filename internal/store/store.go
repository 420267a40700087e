package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"agendahub/internal/model"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned on unique-constraint violations (email, slug).
	ErrDuplicate = errors.New("already exists")
)

type RefreshToken struct {
	ID         string
	UserID     int64
	TokenHash  string
	ExpiresAt  time.Time
	Revoked    bool
	ReplacedBy *string
	CreatedAt  time.Time
}

// Store is the persistence boundary of the platform. Postgres implements it
// for production; Memory implements it for the reference in-process setup
// and for tests.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, u *model.User) error
	DeleteUser(ctx context.Context, id int64) error
	// OwnerOfBusiness resolves the owner-role user account linked to a
	// business, if one has registered.
	OwnerOfBusiness(ctx context.Context, businessID int64) (*model.User, error)

	CreateBusiness(ctx context.Context, b *model.Business) error
	GetBusiness(ctx context.Context, id int64) (*model.Business, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*model.Business, error)
	ListBusinessesByStatus(ctx context.Context, status model.BusinessStatus) ([]model.Business, error)
	UpdateBusiness(ctx context.Context, b *model.Business) error

	CreateService(ctx context.Context, s *model.Service) error
	GetService(ctx context.Context, id int64) (*model.Service, error)
	ListServicesByBusiness(ctx context.Context, businessID int64) ([]model.Service, error)
	UpdateService(ctx context.Context, s *model.Service) error
	DeleteService(ctx context.Context, id int64) error

	// CreateAppointment persists the appointment, increments the business's
	// lifetime counter and writes the creation notification as one atomic
	// unit. gate is evaluated against the business while it is held
	// exclusively, so two concurrent creations at the quota boundary cannot
	// both pass.
	CreateAppointment(ctx context.Context, a *model.Appointment, n *model.Notification, gate func(model.Business) error) error
	GetAppointment(ctx context.Context, id int64) (*model.Appointment, error)
	ListAppointmentsByClient(ctx context.Context, clientID int64) ([]model.Appointment, error)
	ListAppointmentsByBusiness(ctx context.Context, businessID int64) ([]model.Appointment, error)
	// UpdateAppointmentStatus writes the new status and, when n is non-nil,
	// the transition notification as one atomic unit. A failed notification
	// write must not leave the status changed.
	UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus, n *model.Notification) (*model.Appointment, error)

	GetNotification(ctx context.Context, id int64) (*model.Notification, error)
	ListNotificationsByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error

	CreateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (string, error)
	GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	RotateRefreshToken(ctx context.Context, oldID, newID string, userID int64, newHash string, newExpiry time.Time) error
	RevokeAllRefreshTokens(ctx context.Context, userID int64) error
}

// Postgres is the pgx-backed Store.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

var _ Store = (*Postgres)(nil)

// pgErr maps driver errors onto the store sentinels.
func pgErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pe *pgconn.PgError
	if errors.As(err, &pe) {
		switch pe.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			// foreign key: the referenced row does not exist
			return ErrNotFound
		}
	}
	return err
}
