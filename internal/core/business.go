package core

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"agendahub/internal/model"
	"agendahub/internal/store"
)

type CreateBusinessParams struct {
	Name        string
	OwnerName   string
	Email       string
	Phone       string
	Type        string
	Address     string
	Description string
}

// CreateBusiness registers a tenant. Admin only. The slug is derived from
// the name and collision-resolved with a numeric suffix; once assigned it is
// stable for the life of the business (renames do not touch it).
func (c *Core) CreateBusiness(ctx context.Context, p Principal, in CreateBusinessParams) (*model.Business, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if in.Name == "" || in.OwnerName == "" || in.Email == "" || in.Type == "" {
		return nil, fmt.Errorf("%w: name, ownerName, email and type are required", ErrBadRequest)
	}

	slug, err := c.uniqueSlug(ctx, in.Name)
	if err != nil {
		return nil, err
	}

	b := &model.Business{
		Name:        in.Name,
		OwnerName:   in.OwnerName,
		Email:       in.Email,
		Phone:       in.Phone,
		Type:        in.Type,
		URLSlug:     slug,
		Address:     in.Address,
		Description: in.Description,
		Status:      model.BusinessActive,
	}
	if err := c.store.CreateBusiness(ctx, b); err != nil {
		return nil, err
	}

	c.log.Info("business created", zap.Int64("businessId", b.ID), zap.String("slug", b.URLSlug))
	return b, nil
}

func (c *Core) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := Slugify(name)
	if base == "" {
		base = "estabelecimento"
	}
	candidate := base
	for i := 1; ; i++ {
		_, err := c.store.GetBusinessBySlug(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

type UpdateBusinessParams struct {
	Name        *string
	OwnerName   *string
	Email       *string
	Phone       *string
	Type        *string
	Address     *string
	Description *string
	Status      *model.BusinessStatus
	IsPremium   *bool
}

func (c *Core) UpdateBusiness(ctx context.Context, p Principal, id int64, in UpdateBusinessParams) (*model.Business, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	b, err := c.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}

	if in.Name != nil {
		b.Name = *in.Name
	}
	if in.OwnerName != nil {
		b.OwnerName = *in.OwnerName
	}
	if in.Email != nil {
		b.Email = *in.Email
	}
	if in.Phone != nil {
		b.Phone = *in.Phone
	}
	if in.Type != nil {
		b.Type = *in.Type
	}
	if in.Address != nil {
		b.Address = *in.Address
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	if in.Status != nil {
		switch *in.Status {
		case model.BusinessActive, model.BusinessInactive, model.BusinessPending:
			b.Status = *in.Status
		default:
			return nil, fmt.Errorf("%w: invalid business status", ErrBadRequest)
		}
	}
	if in.IsPremium != nil {
		b.IsPremium = *in.IsPremium
	}

	if err := c.store.UpdateBusiness(ctx, b); err != nil {
		return nil, fromStore(err)
	}
	return b, nil
}

// DeactivateBusiness is the "delete" operation: a status transition to
// inactive, never a hard removal.
func (c *Core) DeactivateBusiness(ctx context.Context, p Principal, id int64) (*model.Business, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	b, err := c.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	b.Status = model.BusinessInactive
	if err := c.store.UpdateBusiness(ctx, b); err != nil {
		return nil, fromStore(err)
	}

	c.log.Info("business deactivated", zap.Int64("businessId", id))
	return b, nil
}

func (c *Core) GetBusiness(ctx context.Context, id int64) (*model.Business, error) {
	b, err := c.store.GetBusiness(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	return b, nil
}

func (c *Core) GetBusinessBySlug(ctx context.Context, slug string) (*model.Business, error) {
	b, err := c.store.GetBusinessBySlug(ctx, slug)
	if err != nil {
		return nil, fromStore(err)
	}
	return b, nil
}

func (c *Core) ListBusinesses(ctx context.Context, status model.BusinessStatus) ([]model.Business, error) {
	return c.store.ListBusinessesByStatus(ctx, status)
}
