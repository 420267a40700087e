package store

import (
	"context"

	"agendahub/internal/model"
)

const appointmentCols = `id, service_id, COALESCE(client_id, 0), business_id, date, COALESCE(notes, ''), status, created_at, updated_at`

// CreateAppointment locks the business row, runs the quota gate against the
// locked state and then writes the appointment, the counter increment and
// the creation notification in one transaction.
func (s *Postgres) CreateAppointment(ctx context.Context, a *model.Appointment, n *model.Notification, gate func(model.Business) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	b := model.Business{}
	err = tx.QueryRow(ctx,
		`SELECT `+businessCols+` FROM businesses WHERE id = $1 FOR UPDATE`, a.BusinessID,
	).Scan(&b.ID, &b.Name, &b.OwnerName, &b.Email, &b.Phone, &b.Type, &b.URLSlug,
		&b.Address, &b.Description, &b.Status, &b.AppointmentCount, &b.IsPremium, &b.CreatedAt)
	if err != nil {
		return pgErr(err)
	}

	if err := gate(b); err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO appointments (service_id, client_id, business_id, date, notes, status)
		 VALUES ($1,$2,$3,$4,NULLIF($5,''),$6)
		 RETURNING id, created_at, updated_at`,
		a.ServiceID, a.ClientID, a.BusinessID, a.Date, a.Notes, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return pgErr(err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE businesses SET appointment_count = appointment_count + 1 WHERE id = $1`, a.BusinessID)
	if err != nil {
		return err
	}

	n.AppointmentID = a.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO notifications (user_id, title, message, type, appointment_id)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING id, read, created_at`,
		n.UserID, n.Title, n.Message, n.Type, n.AppointmentID,
	).Scan(&n.ID, &n.Read, &n.CreatedAt)
	if err != nil {
		return pgErr(err)
	}

	return tx.Commit(ctx)
}

func (s *Postgres) GetAppointment(ctx context.Context, id int64) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.ServiceID, &a.ClientID, &a.BusinessID, &a.Date, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return a, nil
}

func (s *Postgres) ListAppointmentsByClient(ctx context.Context, clientID int64) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `client_id`, clientID)
}

func (s *Postgres) ListAppointmentsByBusiness(ctx context.Context, businessID int64) ([]model.Appointment, error) {
	return s.listAppointments(ctx, `business_id`, businessID)
}

func (s *Postgres) listAppointments(ctx context.Context, col string, id int64) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE `+col+` = $1 ORDER BY date`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.ServiceID, &a.ClientID, &a.BusinessID, &a.Date, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateAppointmentStatus writes the status and the transition notification
// in one transaction, so a failed notification rolls the status back.
func (s *Postgres) UpdateAppointmentStatus(ctx context.Context, id int64, status model.AppointmentStatus, n *model.Notification) (*model.Appointment, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	a := &model.Appointment{}
	err = tx.QueryRow(ctx,
		`UPDATE appointments SET status=$1, updated_at=NOW() WHERE id=$2
		 RETURNING `+appointmentCols, status, id,
	).Scan(&a.ID, &a.ServiceID, &a.ClientID, &a.BusinessID, &a.Date, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, pgErr(err)
	}

	if n != nil {
		n.AppointmentID = a.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO notifications (user_id, title, message, type, appointment_id)
			 VALUES ($1,$2,$3,$4,$5)
			 RETURNING id, read, created_at`,
			n.UserID, n.Title, n.Message, n.Type, n.AppointmentID,
		).Scan(&n.ID, &n.Read, &n.CreatedAt)
		if err != nil {
			return nil, pgErr(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return a, nil
}
