package store

import (
	"context"

	"agendahub/internal/model"
)

func (s *Postgres) GetNotification(ctx context.Context, id int64) (*model.Notification, error) {
	n := &model.Notification{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, title, message, type, read, created_at, COALESCE(appointment_id, 0)
		 FROM notifications WHERE id = $1`, id,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.AppointmentID)
	if err != nil {
		return nil, pgErr(err)
	}
	return n, nil
}

// most recent first
func (s *Postgres) ListNotificationsByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, title, message, type, read, created_at, COALESCE(appointment_id, 0)
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt, &n.AppointmentID); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Postgres) MarkNotificationRead(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `UPDATE notifications SET read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
