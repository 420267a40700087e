package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"agendahub/internal/model"
	"agendahub/internal/store"
)

type RegisterParams struct {
	Name  string
	Email string
	// already hashed by the auth boundary; opaque here
	PasswordHash string
	Role         model.Role
	// owner accounts may link to their business at registration
	BusinessID int64
}

func (c *Core) RegisterUser(ctx context.Context, in RegisterParams) (*model.User, error) {
	if in.Name == "" || in.Email == "" || in.PasswordHash == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", ErrBadRequest)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: invalid role", ErrBadRequest)
	}
	if in.Role != model.RoleOwner {
		in.BusinessID = 0
	}
	if in.BusinessID != 0 {
		if _, err := c.store.GetBusiness(ctx, in.BusinessID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, fmt.Errorf("%w: business does not exist", ErrBadRequest)
			}
			return nil, err
		}
	}

	u := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		Role:         in.Role,
		BusinessID:   in.BusinessID,
	}
	if err := c.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrBadRequest)
		}
		return nil, err
	}

	c.log.Info("user registered", zap.Int64("userId", u.ID), zap.String("role", string(u.Role)))
	return u, nil
}

func (c *Core) ListUsers(ctx context.Context, p Principal) ([]model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	return c.store.ListUsers(ctx)
}

func (c *Core) GetUser(ctx context.Context, p Principal, id int64) (*model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	u, err := c.store.GetUser(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return u, nil
}

type UpdateUserParams struct {
	Name         *string
	Email        *string
	Role         *model.Role
	PasswordHash *string
}

func (c *Core) UpdateUser(ctx context.Context, p Principal, id int64, in UpdateUserParams) (*model.User, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	u, err := c.store.GetUser(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: invalid role", ErrBadRequest)
		}
		u.Role = *in.Role
	}
	if in.PasswordHash != nil {
		u.PasswordHash = *in.PasswordHash
	}

	if err := c.store.UpdateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already in use", ErrBadRequest)
		}
		return nil, fromStore(err)
	}
	return u, nil
}

// DeleteUser removes a user account. Admin only, and an admin can never
// delete their own account, regardless of how many other admins exist.
func (c *Core) DeleteUser(ctx context.Context, p Principal, id int64) error {
	if err := requireAdmin(p); err != nil {
		return err
	}
	if id == p.ID {
		return fmt.Errorf("%w: cannot delete your own account", ErrForbidden)
	}
	if _, err := c.store.GetUser(ctx, id); err != nil {
		return fromStore(err)
	}
	return fromStore(c.store.DeleteUser(ctx, id))
}
