package schedule

import (
	"fmt"
	"time"
)

// Weekday is the fixed weekday enumeration used both as storage code
// and for day arithmetic. Ordinals run Monday=0 .. Sunday=6.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

var ordinals = map[Weekday]int{
	Monday:    0,
	Tuesday:   1,
	Wednesday: 2,
	Thursday:  3,
	Friday:    4,
	Saturday:  5,
	Sunday:    6,
}

// Weekdays lists all codes in ordinal order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseWeekday(code string) (Weekday, error) {
	d := Weekday(code)
	if _, ok := ordinals[d]; !ok {
		return "", fmt.Errorf("invalid weekday code %q", code)
	}
	return d, nil
}

func (d Weekday) Ordinal() int {
	return ordinals[d]
}

// WeekdayOf maps an instant to the enumeration (time.Weekday counts
// from Sunday, our ordinals from Monday).
func WeekdayOf(t time.Time) Weekday {
	return Weekdays[(int(t.Weekday())+6)%7]
}

// inDayRange reports whether d falls in the closed range [from, to],
// wrapping across the week boundary when from > to. Equal from and to
// means open on exactly that one weekday.
func inDayRange(d, from, to Weekday) bool {
	o, lo, hi := d.Ordinal(), from.Ordinal(), to.Ordinal()
	if lo <= hi {
		return o >= lo && o <= hi
	}
	return o >= lo || o <= hi
}
