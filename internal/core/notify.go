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

type appointmentEvent string

const (
	eventCreated   appointmentEvent = "created"
	eventConfirmed appointmentEvent = "confirmed"
	eventCancelled appointmentEvent = "cancelled"
	eventCompleted appointmentEvent = "completed"
)

func eventForStatus(s model.AppointmentStatus) (appointmentEvent, bool) {
	switch s {
	case model.StatusConfirmed:
		return eventConfirmed, true
	case model.StatusCancelled:
		return eventCancelled, true
	case model.StatusCompleted:
		return eventCompleted, true
	}
	// a reset to pending carries no notification
	return "", false
}

// Fixed title/message pairs per event; %s is the formatted appointment date.
var notificationCopy = map[appointmentEvent]struct {
	Title    string
	Type     string
	Template string
}{
	eventCreated:   {"Novo agendamento criado", "appointment_created", "Seu agendamento para %s foi criado."},
	eventConfirmed: {"Agendamento confirmado", "appointment_confirmed", "Seu agendamento para %s foi confirmado."},
	eventCancelled: {"Agendamento cancelado", "appointment_cancelled", "Seu agendamento para %s foi cancelado."},
	eventCompleted: {"Serviço concluído", "appointment_completed", "Seu serviço agendado para %s foi concluído."},
}

func formatAppointmentDate(t time.Time) string {
	return t.Format("02/01/2006 às 15:04")
}

func buildNotification(event appointmentEvent, recipientID int64, a *model.Appointment) model.Notification {
	copyFor := notificationCopy[event]
	return model.Notification{
		UserID:        recipientID,
		Title:         copyFor.Title,
		Message:       fmt.Sprintf(copyFor.Template, formatAppointmentDate(a.Date)),
		Type:          copyFor.Type,
		AppointmentID: a.ID,
	}
}

// transitionNotification addresses the party that did not perform the
// transition: a client acting notifies the business owner's user account, an
// owner acting notifies the client. Returns nil when nobody can be addressed.
// There is no duplicate suppression; repeating a transition produces a
// second notification.
func (c *Core) transitionNotification(ctx context.Context, actor Principal, a *model.Appointment, event appointmentEvent) (*model.Notification, error) {
	var recipientID int64
	if actor.Role == model.RoleClient {
		owner, err := c.store.OwnerOfBusiness(ctx, a.BusinessID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// no owner account registered for this business yet
				c.log.Warn("notification skipped, business has no owner account",
					zap.Int64("businessId", a.BusinessID),
					zap.Int64("appointmentId", a.ID))
				return nil, nil
			}
			return nil, err
		}
		recipientID = owner.ID
	} else {
		recipientID = a.ClientID
	}
	if recipientID == 0 {
		// the client account was deleted after booking
		return nil, nil
	}

	n := buildNotification(event, recipientID, a)
	return &n, nil
}
