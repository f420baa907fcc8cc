package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/shop-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-scheduler/internal/locks"
	"github.com/BruksfildServices01/shop-scheduler/internal/metrics"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	ShopID uint

	ClientName  string
	ClientEmail string
	ClientPhone string

	Start       time.Time
	DurationMin int
	Note        string
}

// ======================================================
// USE CASE
// ======================================================

// Book composes the calendar check, the conflict check and the
// client/appointment writes into one atomic unit. A per-shop lock is
// held across the transaction so that two simultaneous bookings for
// overlapping slots on the same shop cannot both pass the conflict
// check; on postgres the shop row lock gives the same guarantee
// across processes.
type Book struct {
	repo   domain.Repository
	locker *locks.ShopLocker
	audit  *audit.Dispatcher
	logger *zap.Logger
}

func NewBook(
	repo domain.Repository,
	locker *locks.ShopLocker,
	auditor *audit.Dispatcher,
	logger *zap.Logger,
) *Book {
	return &Book{
		repo:   repo,
		locker: locker,
		audit:  auditor,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Shop is required, never silently optional
	// --------------------------------------------------
	if in.ShopID == 0 {
		return nil, domain.ErrMissingShop
	}

	if !domain.IsAllowedDuration(in.DurationMin) {
		return nil, domain.ErrInvalidDuration
	}
	if len(in.Note) > domain.MaxNoteLen {
		return nil, domain.ErrNoteTooLong
	}

	shop, err := uc.repo.GetShopByID(ctx, in.ShopID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Derived end
	// --------------------------------------------------
	end := in.Start.Add(time.Duration(in.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 3. Business-hours calendar on start and end
	// --------------------------------------------------
	hours, err := schedule.NewHours(
		shop.OpeningDay,
		shop.ClosingDay,
		shop.OpeningTime,
		shop.ClosingTime,
	)
	if err != nil {
		return nil, err
	}
	if err := hours.Interval(in.Start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4-6. Conflict check + client upsert + create, one
	// atomic unit under the per-shop lock
	// --------------------------------------------------
	uc.locker.Lock(in.ShopID)
	defer uc.locker.Unlock(in.ShopID)

	var created *models.Appointment

	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.LockShop(ctx, in.ShopID); err != nil {
			return err
		}

		conflict, err := tx.HasConflict(
			ctx,
			in.ShopID,
			in.Start,
			end,
			domain.BlockingStatuses(),
		)
		if err != nil {
			return err
		}
		if conflict {
			return domain.ErrSlotConflict
		}

		client, err := tx.UpsertClientByEmail(
			ctx,
			in.ClientName,
			in.ClientEmail,
			in.ClientPhone,
		)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			Ref:         uuid.NewString(),
			ClientID:    client.ID,
			ShopID:      &shop.ID,
			StartTime:   in.Start,
			DurationMin: in.DurationMin,
			EndTime:     end,
			Status:      string(domain.InitialStatus()),
			Note:        in.Note,
		}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrSlotConflict) {
			metrics.SlotConflicts.Inc()
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	uc.logger.Info("appointment booked",
		zap.Uint("shop_id", in.ShopID),
		zap.Uint("appointment_id", created.ID),
		zap.Time("start", in.Start),
	)

	uc.audit.Dispatch(audit.Event{
		ShopID:   in.ShopID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
