package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// DateRange presets for the owner's appointment views.
type DateRange string

const (
	RangeAll       DateRange = ""
	RangeToday     DateRange = "today"
	RangeThisWeek  DateRange = "this-week"
	RangeThisMonth DateRange = "this-month"
	RangeUpcoming  DateRange = "upcoming"
)

type ListQuery struct {
	Search string
	Status domain.Status
	Range  DateRange
	Sort   domain.SortKey
}

// List is a read-only projection over the shop's appointments; it
// imposes no invariant of its own.
type List struct {
	repo domain.Repository

	now func() time.Time
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo, now: time.Now}
}

func (uc *List) Execute(
	ctx context.Context,
	shopID uint,
	q ListQuery,
) ([]models.Appointment, error) {

	f := domain.ListFilter{
		Search: q.Search,
		Status: q.Status,
		Sort:   q.Sort,
	}
	f.From, f.Until = uc.bounds(q.Range)

	return uc.repo.ListForShop(ctx, shopID, f)
}

func (uc *List) bounds(r DateRange) (*time.Time, *time.Time) {
	now := uc.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r {
	case RangeToday:
		end := midnight.Add(24 * time.Hour)
		return &midnight, &end
	case RangeThisWeek:
		// Week starts Monday.
		offset := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		end := start.AddDate(0, 0, 7)
		return &start, &end
	case RangeThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		return &start, &end
	case RangeUpcoming:
		return &now, nil
	default:
		return nil, nil
	}
}
