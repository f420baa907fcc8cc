package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-08-04 is a Monday.
func mondayAt(hour, min int) time.Time {
	return time.Date(2025, 8, 4, hour, min, 0, 0, time.UTC)
}

func weekdayHours(t *testing.T) Hours {
	t.Helper()
	h, err := NewHours("mon", "fri", "09:00", "17:00")
	require.NoError(t, err)
	return h
}

func TestHours_At_OpenDuringWindow(t *testing.T) {
	h := weekdayHours(t)

	assert.NoError(t, h.At(mondayAt(10, 0)))
	assert.NoError(t, h.At(mondayAt(9, 0)))  // opening minute inclusive
	assert.NoError(t, h.At(mondayAt(17, 0))) // closing minute inclusive
}

func TestHours_At_ClosedOnThatDay(t *testing.T) {
	h := weekdayHours(t)

	sunday := time.Date(2025, 8, 3, 10, 0, 0, 0, time.UTC)
	err := h.At(sunday)
	require.Error(t, err)

	reason, ok := ClosedReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, WrongDay, reason)
}

func TestHours_At_ClosedAtThatTime(t *testing.T) {
	h := weekdayHours(t)

	err := h.At(mondayAt(8, 0))
	require.Error(t, err)

	reason, ok := ClosedReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, WrongTime, reason)

	err = h.At(mondayAt(17, 1))
	reason, _ = ClosedReasonOf(err)
	assert.Equal(t, WrongTime, reason)
}

func TestHours_WraparoundWeek(t *testing.T) {
	h, err := NewHours("fri", "mon", "09:00", "17:00")
	require.NoError(t, err)

	saturday := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 8, 3, 10, 0, 0, 0, time.UTC)
	monday := mondayAt(10, 0)
	wednesday := time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, h.At(saturday))
	assert.NoError(t, h.At(sunday))
	assert.NoError(t, h.At(monday))

	reason, ok := ClosedReasonOf(h.At(wednesday))
	require.True(t, ok)
	assert.Equal(t, WrongDay, reason)
}

func TestHours_SingleDayWindow(t *testing.T) {
	// Equal opening and closing day means open exactly that weekday.
	h, err := NewHours("wed", "wed", "09:00", "17:00")
	require.NoError(t, err)

	wednesday := time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)
	thursday := time.Date(2025, 8, 7, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, h.At(wednesday))

	reason, ok := ClosedReasonOf(h.At(thursday))
	require.True(t, ok)
	assert.Equal(t, WrongDay, reason)
}

func TestHours_Interval_EndPastClosing(t *testing.T) {
	h := weekdayHours(t)

	// 16:45 + 30min ends 17:15, past closing.
	start := mondayAt(16, 45)
	err := h.Interval(start, start.Add(30*time.Minute))
	require.Error(t, err)

	reason, ok := ClosedReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, WrongTime, reason)
}

func TestHours_Interval_EndExactlyAtClosing(t *testing.T) {
	h := weekdayHours(t)

	start := mondayAt(16, 30)
	assert.NoError(t, h.Interval(start, start.Add(30*time.Minute)))
}

func TestHours_Interval_SpansMidnight(t *testing.T) {
	h, err := NewHours("mon", "fri", "09:00", "23:59")
	require.NoError(t, err)

	start := mondayAt(23, 30)
	err = h.Interval(start, start.Add(60*time.Minute))
	require.Error(t, err)

	reason, ok := ClosedReasonOf(err)
	require.True(t, ok)
	assert.Equal(t, SpansMidnight, reason)
}

func TestWeekdayOf(t *testing.T) {
	assert.Equal(t, Monday, WeekdayOf(mondayAt(0, 0)))
	assert.Equal(t, Sunday, WeekdayOf(time.Date(2025, 8, 3, 0, 0, 0, 0, time.UTC)))
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("sat")
	require.NoError(t, err)
	assert.Equal(t, 5, d.Ordinal())

	_, err = ParseWeekday("monday")
	assert.Error(t, err)
}
