package core

import "agendahub/internal/model"

// Authorization rules live here so the rule set is auditable in one place
// instead of being spread over handlers.

// statusTargets lists which target statuses each role may set on an
// appointment it is allowed to touch. Any listed value may be set from any
// current status; there is no directed transition graph beyond this table.
// Admins have no status-change permission at all.
var statusTargets = map[model.Role]map[model.AppointmentStatus]bool{
	model.RoleClient: {
		model.StatusConfirmed: true,
		model.StatusCancelled: true,
	},
	model.RoleOwner: {
		model.StatusPending:   true,
		model.StatusConfirmed: true,
		model.StatusCancelled: true,
		model.StatusCompleted: true,
	},
}

// canSetStatus checks ownership, then that the target is a known status,
// then the per-role target table. Ordering matters: a client touching
// somebody else's appointment gets Forbidden even for a garbage status,
// while an authorized actor sending a garbage status gets InvalidStatus.
func canSetStatus(p Principal, a *model.Appointment, target model.AppointmentStatus) error {
	switch p.Role {
	case model.RoleClient:
		if a.ClientID != p.ID {
			return ErrForbidden
		}
	case model.RoleOwner:
		if p.BusinessID == 0 || a.BusinessID != p.BusinessID {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}
	if !target.Valid() {
		return ErrInvalidStatus
	}
	if !statusTargets[p.Role][target] {
		return ErrForbidden
	}
	return nil
}

// requireAdmin guards business management and user administration.
func requireAdmin(p Principal) error {
	if p.Role != model.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

// requireBusinessOwner guards service management: only the owner whose
// account is linked to the given business may act.
func requireBusinessOwner(p Principal, businessID int64) error {
	if p.Role != model.RoleOwner || p.BusinessID == 0 || p.BusinessID != businessID {
		return ErrForbidden
	}
	return nil
}
