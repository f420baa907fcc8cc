package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

// SortKey orders owner-side appointment listings.
type SortKey string

const (
	SortByDate     SortKey = "date"
	SortByCustomer SortKey = "customer"
	SortByStatus   SortKey = "status"
)

// ListFilter narrows the per-shop appointment projection. Zero values
// mean "no filter"; Search matches client name, email or phone.
type ListFilter struct {
	Search string
	Status Status
	From   *time.Time
	Until  *time.Time
	Sort   SortKey
}

type Repository interface {
	// -------- Shop --------
	GetShopByID(ctx context.Context, id uint) (*models.Shop, error)

	// LockShop takes the per-shop row lock inside the current
	// transaction, serializing concurrent conflict checks.
	LockShop(ctx context.Context, id uint) error

	// -------- Client --------

	// UpsertClientByEmail finds the client by email, creating it if
	// absent and refreshing name/phone in place when they changed.
	UpsertClientByEmail(ctx context.Context, name, email, phone string) (*models.Client, error)

	// -------- Appointment --------

	// HasConflict reports whether any appointment of the shop in a
	// blocking status overlaps [start, end).
	HasConflict(ctx context.Context, shopID uint, start, end time.Time, blocking []Status) (bool, error)

	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error)

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error

	DeleteAppointment(ctx context.Context, ap *models.Appointment) error

	ListForShop(ctx context.Context, shopID uint, f ListFilter) ([]models.Appointment, error)

	// -------- Transactions --------

	// Transaction runs fn against a repository bound to one database
	// transaction; returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(Repository) error) error
}
