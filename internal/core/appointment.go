package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"agendahub/internal/model"
	"agendahub/internal/store"
)

type CreateAppointmentParams struct {
	ServiceID int64
	Date      time.Time
	Notes     string
	// ClientID is required when an owner books on behalf of a client;
	// ignored for clients, who always book for themselves.
	ClientID int64
}

// CreateAppointment runs the creation path of the lifecycle: resolve the
// service, authorize the actor, pick the client, pass the quota gate and
// persist appointment + counter increment + creation notification as one
// atomic unit. Status is forced to pending regardless of caller input.
func (c *Core) CreateAppointment(ctx context.Context, p Principal, in CreateAppointmentParams) (*model.Appointment, error) {
	if in.ServiceID == 0 || in.Date.IsZero() {
		return nil, fmt.Errorf("%w: serviceId and date are required", ErrBadRequest)
	}

	sv, err := c.store.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, fromStore(err)
	}

	var clientID int64
	switch p.Role {
	case model.RoleClient:
		clientID = p.ID
	case model.RoleOwner:
		if p.BusinessID != sv.BusinessID {
			return nil, ErrForbidden
		}
		if in.ClientID == 0 {
			return nil, fmt.Errorf("%w: clientId is required for owner-created appointments", ErrBadRequest)
		}
		if _, err := c.store.GetUser(ctx, in.ClientID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: client does not exist", ErrBadRequest)
			}
			return nil, err
		}
		clientID = in.ClientID
	default:
		return nil, ErrForbidden
	}

	a := &model.Appointment{
		ServiceID:  sv.ID,
		ClientID:   clientID,
		BusinessID: sv.BusinessID,
		Date:       in.Date,
		Notes:      in.Notes,
		Status:     model.StatusPending,
	}
	n := buildNotification(eventCreated, clientID, a)

	if err := c.store.CreateAppointment(ctx, a, &n, quotaGate); err != nil {
		return nil, fromStore(err)
	}

	c.log.Info("appointment created",
		zap.Int64("appointmentId", a.ID),
		zap.Int64("businessId", a.BusinessID),
		zap.Int64("clientId", a.ClientID))
	return a, nil
}

// SetAppointmentStatus applies a transition: lookup, authorization per the
// role/ownership table, status validation, then the write with a fresh
// updatedAt and the notification to the other party, persisted together.
// No-op transitions (confirmed -> confirmed) are allowed and still notify.
func (c *Core) SetAppointmentStatus(ctx context.Context, p Principal, id int64, target model.AppointmentStatus) (*model.Appointment, error) {
	a, err := c.store.GetAppointment(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if err := canSetStatus(p, a, target); err != nil {
		return nil, err
	}

	var n *model.Notification
	if event, ok := eventForStatus(target); ok {
		n, err = c.transitionNotification(ctx, p, a, event)
		if err != nil {
			return nil, err
		}
	}

	updated, err := c.store.UpdateAppointmentStatus(ctx, id, target, n)
	if err != nil {
		return nil, fromStore(err)
	}

	c.log.Info("appointment status changed",
		zap.Int64("appointmentId", id),
		zap.String("status", string(target)),
		zap.Int64("actorId", p.ID))
	return updated, nil
}

// ListAppointments is scoped by the caller's identity: clients see their own
// appointments, owners their business's, and admins must name a business
// explicitly — there is no global appointment view.
func (c *Core) ListAppointments(ctx context.Context, p Principal, businessID int64) ([]model.Appointment, error) {
	switch p.Role {
	case model.RoleClient:
		return c.store.ListAppointmentsByClient(ctx, p.ID)
	case model.RoleOwner:
		if p.BusinessID == 0 {
			return nil, fmt.Errorf("%w: user is not associated with a business", ErrBadRequest)
		}
		return c.store.ListAppointmentsByBusiness(ctx, p.BusinessID)
	case model.RoleAdmin:
		if businessID == 0 {
			return nil, fmt.Errorf("%w: admin must specify a businessId", ErrBadRequest)
		}
		return c.store.ListAppointmentsByBusiness(ctx, businessID)
	}
	return nil, ErrForbidden
}
