package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ClosedReason tells the caller which calendar check rejected the
// instant, so the form layer can render a specific message.
type ClosedReason string

const (
	WrongDay      ClosedReason = "wrong_day"
	WrongTime     ClosedReason = "wrong_time"
	SpansMidnight ClosedReason = "spans_midnight"
)

type ClosedError struct {
	Reason ClosedReason
}

func (e *ClosedError) Error() string {
	switch e.Reason {
	case WrongDay:
		return "shop is closed on that day"
	case SpansMidnight:
		return "appointment may not span midnight"
	default:
		return "shop is closed at that time"
	}
}

// ClosedReasonOf extracts the reason when err is a calendar rejection.
func ClosedReasonOf(err error) (ClosedReason, bool) {
	var ce *ClosedError
	if errors.As(err, &ce) {
		return ce.Reason, true
	}
	return "", false
}

// Hours is a shop's weekly booking window: a day range (possibly
// wrapping the week boundary) and a daily time range, both inclusive.
type Hours struct {
	OpeningDay  Weekday
	ClosingDay  Weekday
	OpeningTime string // "15:04"
	ClosingTime string // "15:04"
}

func NewHours(openingDay, closingDay, openingTime, closingTime string) (Hours, error) {
	od, err := ParseWeekday(openingDay)
	if err != nil {
		return Hours{}, err
	}
	cd, err := ParseWeekday(closingDay)
	if err != nil {
		return Hours{}, err
	}
	for _, hm := range []string{openingTime, closingTime} {
		if _, err := time.Parse("15:04", hm); err != nil {
			return Hours{}, fmt.Errorf("invalid time of day %q", hm)
		}
	}
	return Hours{
		OpeningDay:  od,
		ClosingDay:  cd,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
	}, nil
}

// onDay anchors an "15:04" string to the calendar date of t.
func onDay(hm string, t time.Time) time.Time {
	p, _ := time.Parse("15:04", hm)
	return time.Date(t.Year(), t.Month(), t.Day(), p.Hour(), p.Minute(), 0, 0, t.Location())
}

// At reports whether the shop is open at the given instant. A nil
// return means open; otherwise the error carries WrongDay or WrongTime.
func (h Hours) At(t time.Time) error {
	if !inDayRange(WeekdayOf(t), h.OpeningDay, h.ClosingDay) {
		return &ClosedError{Reason: WrongDay}
	}

	open := onDay(h.OpeningTime, t)
	closeAt := onDay(h.ClosingTime, t)
	if t.Before(open) || t.After(closeAt) {
		return &ClosedError{Reason: WrongTime}
	}
	return nil
}

// Interval validates a proposed [start, end) slot: the start must fall
// inside the window, the end must not pass closing time, and the slot
// must stay within the start's calendar date.
func (h Hours) Interval(start, end time.Time) error {
	if err := h.At(start); err != nil {
		return err
	}

	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	if sy != ey || sm != em || sd != ed {
		return &ClosedError{Reason: SpansMidnight}
	}

	if end.After(onDay(h.ClosingTime, start)) {
		return &ClosedError{Reason: WrongTime}
	}
	return nil
}
