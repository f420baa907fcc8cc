package appointment

import "errors"

// Recoverable booking/lifecycle outcomes. The usecases return these to
// the caller; only storage failures are surfaced as plain errors.
var (
	// ErrMissingShop: booking submitted without a target shop.
	ErrMissingShop = errors.New("shop is required")

	// ErrSlotConflict: an overlapping blocking-status appointment exists.
	ErrSlotConflict = errors.New("time slot already booked")

	// ErrNotOwned: the acting operator's shop does not own the appointment.
	ErrNotOwned = errors.New("appointment belongs to another shop")

	// ErrNotFound: referenced shop/appointment/client does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition: status change not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidDuration: duration outside the enumerated set.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrNoteTooLong: free-text note over the limit.
	ErrNoteTooLong = errors.New("note too long")
)
