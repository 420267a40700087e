package core

import "agendahub/internal/model"

// FreePlanAppointmentLimit is the lifetime appointment cap for non-premium
// businesses. The counter never decrements, so cancelled appointments still
// consume quota.
const FreePlanAppointmentLimit = 50

// CanAcceptAppointment is the quota gate. It is re-evaluated on every
// creation attempt, against the business state held under lock by the store.
func CanAcceptAppointment(b model.Business) bool {
	return b.IsPremium || b.AppointmentCount < FreePlanAppointmentLimit
}

func quotaGate(b model.Business) error {
	if !CanAcceptAppointment(b) {
		return ErrQuotaExceeded
	}
	return nil
}
