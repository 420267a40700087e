package core

import (
	"context"

	"agendahub/internal/model"
)

// ListNotifications is always scoped to the caller; there is no cross-user
// notification read.
func (c *Core) ListNotifications(ctx context.Context, p Principal) ([]model.Notification, error) {
	return c.store.ListNotificationsByUser(ctx, p.ID)
}

func (c *Core) MarkNotificationRead(ctx context.Context, p Principal, id int64) error {
	n, err := c.store.GetNotification(ctx, id)
	if err != nil {
		return fromStore(err)
	}
	if n.UserID != p.ID {
		return ErrForbidden
	}
	return fromStore(c.store.MarkNotificationRead(ctx, id))
}
