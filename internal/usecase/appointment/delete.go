package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/shop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
)

// Delete removes an appointment for good. Only the owning shop's
// operator may do it; everything else keeps the row.
type Delete struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewDelete(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	logger *zap.Logger,
) *Delete {
	return &Delete{repo: repo, audit: auditor, logger: logger}
}

func (uc *Delete) Execute(
	ctx context.Context,
	operatorShopID uint,
	operatorID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	if ap.ShopID == nil || *ap.ShopID != operatorShopID {
		return domain.ErrNotOwned
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.logger.Info("appointment deleted",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("shop_id", operatorShopID),
	)

	uc.audit.Dispatch(audit.Event{
		ShopID:   operatorShopID,
		UserID:   &operatorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
