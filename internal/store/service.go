package store

import (
	"context"

	"agendahub/internal/model"
)

func (s *Postgres) CreateService(ctx context.Context, sv *model.Service) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO services (name, price, duration, description, business_id)
		 VALUES ($1,$2,$3,NULLIF($4,''),$5)
		 RETURNING id`,
		sv.Name, sv.Price, sv.Duration, sv.Description, sv.BusinessID,
	).Scan(&sv.ID)
	return pgErr(err)
}

func (s *Postgres) GetService(ctx context.Context, id int64) (*model.Service, error) {
	sv := &model.Service{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, price, duration, COALESCE(description, ''), business_id
		 FROM services WHERE id = $1`, id,
	).Scan(&sv.ID, &sv.Name, &sv.Price, &sv.Duration, &sv.Description, &sv.BusinessID)
	if err != nil {
		return nil, pgErr(err)
	}
	return sv, nil
}

func (s *Postgres) ListServicesByBusiness(ctx context.Context, businessID int64) ([]model.Service, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, price, duration, COALESCE(description, ''), business_id
		 FROM services WHERE business_id = $1 ORDER BY id`, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Service
	for rows.Next() {
		var sv model.Service
		if err := rows.Scan(&sv.ID, &sv.Name, &sv.Price, &sv.Duration, &sv.Description, &sv.BusinessID); err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

// business_id is immutable after creation and not part of the update set.
func (s *Postgres) UpdateService(ctx context.Context, sv *model.Service) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE services SET name=$1, price=$2, duration=$3, description=NULLIF($4,'')
		 WHERE id=$5`,
		sv.Name, sv.Price, sv.Duration, sv.Description, sv.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteService(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM services WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
