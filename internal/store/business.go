package store

import (
	"context"

	"agendahub/internal/model"
)

const businessCols = `id, name, owner_name, email, COALESCE(phone, ''), type, url_slug,
	COALESCE(address, ''), COALESCE(description, ''), status, appointment_count, is_premium, created_at`

func (s *Postgres) CreateBusiness(ctx context.Context, b *model.Business) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO businesses (name, owner_name, email, phone, type, url_slug, address, description, status, is_premium)
		 VALUES ($1,$2,$3,NULLIF($4,''),$5,$6,NULLIF($7,''),NULLIF($8,''),$9,$10)
		 RETURNING id, appointment_count, created_at`,
		b.Name, b.OwnerName, b.Email, b.Phone, b.Type, b.URLSlug, b.Address, b.Description, b.Status, b.IsPremium,
	).Scan(&b.ID, &b.AppointmentCount, &b.CreatedAt)
	return pgErr(err)
}

func (s *Postgres) GetBusiness(ctx context.Context, id int64) (*model.Business, error) {
	b := &model.Business{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+businessCols+` FROM businesses WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.OwnerName, &b.Email, &b.Phone, &b.Type, &b.URLSlug,
		&b.Address, &b.Description, &b.Status, &b.AppointmentCount, &b.IsPremium, &b.CreatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return b, nil
}

func (s *Postgres) GetBusinessBySlug(ctx context.Context, slug string) (*model.Business, error) {
	b := &model.Business{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+businessCols+` FROM businesses WHERE url_slug = $1`, slug,
	).Scan(&b.ID, &b.Name, &b.OwnerName, &b.Email, &b.Phone, &b.Type, &b.URLSlug,
		&b.Address, &b.Description, &b.Status, &b.AppointmentCount, &b.IsPremium, &b.CreatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return b, nil
}

func (s *Postgres) ListBusinessesByStatus(ctx context.Context, status model.BusinessStatus) ([]model.Business, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+businessCols+` FROM businesses WHERE status = $1 ORDER BY id`, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Business
	for rows.Next() {
		var b model.Business
		if err := rows.Scan(&b.ID, &b.Name, &b.OwnerName, &b.Email, &b.Phone, &b.Type, &b.URLSlug,
			&b.Address, &b.Description, &b.Status, &b.AppointmentCount, &b.IsPremium, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateBusiness writes every mutable column; appointment_count is owned by
// CreateAppointment and deliberately left out.
func (s *Postgres) UpdateBusiness(ctx context.Context, b *model.Business) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE businesses
		 SET name=$1, owner_name=$2, email=$3, phone=NULLIF($4,''), type=$5,
		     address=NULLIF($6,''), description=NULLIF($7,''), status=$8, is_premium=$9
		 WHERE id=$10`,
		b.Name, b.OwnerName, b.Email, b.Phone, b.Type, b.Address, b.Description, b.Status, b.IsPremium, b.ID,
	)
	if err != nil {
		return pgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
