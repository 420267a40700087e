// Package core holds the appointment-booking domain: the appointment
// lifecycle state machine, the free/premium quota gate, the notification
// dispatcher and the role-based authorization policy. Handlers translate
// HTTP into calls on Core; storage is injected behind store.Store.
package core

import (
	"go.uber.org/zap"

	"agendahub/internal/model"
	"agendahub/internal/store"
)

// Principal is the authenticated identity supplied by the auth boundary.
// The core trusts it. BusinessID is zero unless the principal is an owner
// linked to a business.
type Principal struct {
	ID         int64
	Role       model.Role
	BusinessID int64
}

type Core struct {
	store store.Store
	log   *zap.Logger
}

func New(st store.Store, log *zap.Logger) *Core {
	if log == nil {
		log = zap.NewNop()
	}
	return &Core{store: st, log: log}
}
