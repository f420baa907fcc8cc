package appointment

import (
	"time"

	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to the target status, stamping the
// matching timestamp. The caller has already checked ownership.
func Transition(ap *models.Appointment, target Status, now time.Time) error {
	if !CanTransition(Status(ap.Status), target) {
		return ErrInvalidTransition
	}

	ap.Status = string(target)
	switch target {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return nil
}
