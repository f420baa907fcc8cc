package appointment

import "time"

// Durations bookable through the form, in minutes.
var AllowedDurations = []int{30, 45, 60, 120}

// MaxNoteLen bounds the free-text note.
const MaxNoteLen = 666

func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Overlaps applies half-open interval semantics to two slots:
// [s1,e1) and [s2,e2) overlap iff s1 < e2 && s2 < e1. An appointment
// ending exactly when another starts does not conflict, so
// back-to-back bookings are allowed.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
