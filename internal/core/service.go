package core

import (
	"context"
	"fmt"

	"agendahub/internal/model"
)

type CreateServiceParams struct {
	Name string
	// minor currency units
	Price       int
	Duration    int
	Description string
	BusinessID  int64
}

func (c *Core) CreateService(ctx context.Context, p Principal, in CreateServiceParams) (*model.Service, error) {
	if in.Name == "" || in.Duration <= 0 || in.Price < 0 || in.BusinessID == 0 {
		return nil, fmt.Errorf("%w: name, price, duration and businessId are required", ErrBadRequest)
	}
	if err := requireBusinessOwner(p, in.BusinessID); err != nil {
		return nil, err
	}

	sv := &model.Service{
		Name:        in.Name,
		Price:       in.Price,
		Duration:    in.Duration,
		Description: in.Description,
		BusinessID:  in.BusinessID,
	}
	if err := c.store.CreateService(ctx, sv); err != nil {
		return nil, fromStore(err)
	}
	return sv, nil
}

type UpdateServiceParams struct {
	Name        *string
	Price       *int
	Duration    *int
	Description *string
}

func (c *Core) UpdateService(ctx context.Context, p Principal, id int64, in UpdateServiceParams) (*model.Service, error) {
	sv, err := c.store.GetService(ctx, id)
	if err != nil {
		return nil, fromStore(err)
	}
	if err := requireBusinessOwner(p, sv.BusinessID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		sv.Name = *in.Name
	}
	if in.Price != nil {
		sv.Price = *in.Price
	}
	if in.Duration != nil {
		sv.Duration = *in.Duration
	}
	if in.Description != nil {
		sv.Description = *in.Description
	}
	if sv.Name == "" || sv.Duration <= 0 || sv.Price < 0 {
		return nil, fmt.Errorf("%w: invalid service fields", ErrBadRequest)
	}

	if err := c.store.UpdateService(ctx, sv); err != nil {
		return nil, fromStore(err)
	}
	return sv, nil
}

func (c *Core) DeleteService(ctx context.Context, p Principal, id int64) error {
	sv, err := c.store.GetService(ctx, id)
	if err != nil {
		return fromStore(err)
	}
	if err := requireBusinessOwner(p, sv.BusinessID); err != nil {
		return err
	}
	return fromStore(c.store.DeleteService(ctx, id))
}

func (c *Core) ListServices(ctx context.Context, businessID int64) ([]model.Service, error) {
	return c.store.ListServicesByBusiness(ctx, businessID)
}
