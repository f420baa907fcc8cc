package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/shop-scheduler/internal/httperr"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// bookingBusinessError folds the recoverable booking/lifecycle
// outcomes into a wire-level business error plus status and human
// message. ok is false for anything unmodeled, which callers treat as
// a storage failure.
func bookingBusinessError(err error) (be httperr.BusinessError, status int, message string, ok bool) {
	if reason, found := schedule.ClosedReasonOf(err); found {
		switch reason {
		case schedule.WrongDay:
			return httperr.BusinessError{Code: "closed_on_that_day", Field: "start_time"},
				http.StatusBadRequest, "The shop is closed on that day.", true
		case schedule.SpansMidnight:
			return httperr.BusinessError{Code: "spans_midnight", Field: "start_time"},
				http.StatusBadRequest, "Appointments may not span midnight.", true
		default:
			return httperr.BusinessError{Code: "closed_at_that_time", Field: "start_time"},
				http.StatusBadRequest, "The shop is closed at that time.", true
		}
	}

	switch {
	case errors.Is(err, domain.ErrMissingShop):
		return httperr.BusinessError{Code: "missing_shop", Field: "shop"},
			http.StatusBadRequest, "A shop must be selected.", true
	case errors.Is(err, domain.ErrSlotConflict):
		return httperr.BusinessError{Code: "slot_conflict", Field: "start_time"},
			http.StatusConflict, "That time slot is already booked.", true
	case errors.Is(err, domain.ErrInvalidDuration):
		return httperr.BusinessError{Code: "invalid_duration"},
			http.StatusBadRequest, "Duration must be 30, 45, 60 or 120 minutes.", true
	case errors.Is(err, domain.ErrNoteTooLong):
		return httperr.BusinessError{Code: "note_too_long"},
			http.StatusBadRequest, "The note is too long.", true
	case errors.Is(err, domain.ErrNotFound):
		return httperr.BusinessError{Code: "not_found"},
			http.StatusNotFound, "Not found.", true
	case errors.Is(err, domain.ErrNotOwned):
		return httperr.BusinessError{Code: "not_owner"},
			http.StatusForbidden, "Appointment belongs to another shop.", true
	case errors.Is(err, domain.ErrInvalidTransition):
		return httperr.BusinessError{Code: "invalid_state"},
			http.StatusBadRequest, "Status change not allowed from the current state.", true
	}
	return httperr.BusinessError{}, 0, "", false
}

// writeBookingError maps the recoverable booking/lifecycle outcomes to
// field-scoped HTTP errors; anything unmodeled is a storage failure.
func writeBookingError(c *gin.Context, err error) {
	be, status, message, ok := bookingBusinessError(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Unexpected error.")
		return
	}
	httperr.WriteBusiness(c, status, be, message)
}

// checkShopNameFree verifies no other shop already holds the name,
// case-insensitively. excludeID lets the settings flow skip the shop
// being renamed; registration passes 0.
func checkShopNameFree(db *gorm.DB, name string, excludeID uint) error {
	var count int64
	if err := db.Model(&models.Shop{}).
		Where("LOWER(name) = LOWER(?) AND id <> ?", name, excludeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("shop_name_taken", "shop_name")
	}
	return nil
}
