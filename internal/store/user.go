package store

import (
	"context"

	"agendahub/internal/model"
)

func (s *Postgres) CreateUser(ctx context.Context, u *model.User) error {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role, business_id)
		 VALUES ($1, lower($2), $3, $4, NULLIF($5, 0))
		 RETURNING id, created_at`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.BusinessID,
	).Scan(&u.ID, &u.CreatedAt)
	return pgErr(err)
}

func (s *Postgres) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(business_id, 0), created_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BusinessID, &u.CreatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return u, nil
}

func (s *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(business_id, 0), created_at
		 FROM users WHERE email = lower($1)`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BusinessID, &u.CreatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return u, nil
}

func (s *Postgres) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(business_id, 0), created_at
		 FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BusinessID, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (s *Postgres) UpdateUser(ctx context.Context, u *model.User) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET name=$1, email=lower($2), password_hash=$3, role=$4, business_id=NULLIF($5, 0)
		 WHERE id=$6`,
		u.Name, u.Email, u.PasswordHash, u.Role, u.BusinessID, u.ID,
	)
	if err != nil {
		return pgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return pgErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) OwnerOfBusiness(ctx context.Context, businessID int64) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, role, COALESCE(business_id, 0), created_at
		 FROM users WHERE business_id = $1 AND role = 'owner'
		 ORDER BY id LIMIT 1`, businessID,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.BusinessID, &u.CreatedAt)
	if err != nil {
		return nil, pgErr(err)
	}
	return u, nil
}
