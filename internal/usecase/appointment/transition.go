package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/shop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// Transition is the single status-change operation: confirm, cancel
// and complete are the same action parameterized by target status,
// with the allowed moves coming from the domain transition table.
type Transition struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger

	now func() time.Time
}

func NewTransition(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	logger *zap.Logger,
) *Transition {
	return &Transition{
		repo:   repo,
		audit:  auditor,
		logger: logger,
		now:    time.Now,
	}
}

func (uc *Transition) Execute(
	ctx context.Context,
	operatorShopID uint,
	operatorID uint,
	appointmentID uint,
	target domain.Status,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// Ownership check: acting on another shop's appointment is an
	// authorization failure, never a silent no-op.
	if ap.ShopID == nil || *ap.ShopID != operatorShopID {
		return nil, domain.ErrNotOwned
	}

	if err := domain.Transition(ap, target, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(string(target)).Inc()
	uc.logger.Info("appointment status changed",
		zap.Uint("appointment_id", ap.ID),
		zap.String("status", ap.Status),
	)

	uc.audit.Dispatch(audit.Event{
		ShopID:   operatorShopID,
		UserID:   &operatorID,
		Action:   "appointment_" + string(target),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
