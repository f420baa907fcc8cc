package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/shop-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/shop-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Shop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &shop, nil
}

// LockShop takes FOR UPDATE on the shop row. Inside a transaction this
// serializes concurrent check+insert sequences for the same shop.
// sqlite has no row locks; there the per-shop mutex in the booking
// usecase provides the mutual exclusion instead.
func (r *AppointmentGormRepository) LockShop(
	ctx context.Context,
	id uint,
) error {

	q := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var shop models.Shop
	if err := q.First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) UpsertClientByEmail(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.Client, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error

	if err == nil {
		if client.Name != name || client.Phone != phone {
			client.Name = name
			client.Phone = phone
			if err := r.db.WithContext(ctx).Save(&client).Error; err != nil {
				return nil, err
			}
		}
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:  name,
		Email: email,
		Phone: phone,
	}
	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) HasConflict(
	ctx context.Context,
	shopID uint,
	start time.Time,
	end time.Time,
	blocking []domain.Status,
) (bool, error) {

	statuses := make([]string, 0, len(blocking))
	for _, s := range blocking {
		statuses = append(statuses, string(s))
	}

	// Half-open overlap: existing.start < end AND existing.end > start.
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"shop_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			shopID, statuses, end, start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Delete(ap).Error
}

func (r *AppointmentGormRepository) ListForShop(
	ctx context.Context,
	shopID uint,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Joins("Client").
		Where("appointments.shop_id = ?", shopID)

	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			`LOWER("Client".name) LIKE ? OR LOWER("Client".email) LIKE ? OR "Client".phone LIKE ?`,
			needle, needle, "%"+f.Search+"%",
		)
	}
	if f.Status != "" {
		q = q.Where("appointments.status = ?", string(f.Status))
	}
	if f.From != nil {
		q = q.Where("appointments.start_time >= ?", *f.From)
	}
	if f.Until != nil {
		q = q.Where("appointments.start_time < ?", *f.Until)
	}

	switch f.Sort {
	case domain.SortByCustomer:
		q = q.Order(`"Client".name ASC, appointments.start_time ASC`)
	case domain.SortByStatus:
		q = q.Order("appointments.status ASC, appointments.start_time ASC")
	default:
		q = q.Order("appointments.start_time ASC")
	}

	var aps []models.Appointment
	if err := q.Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Transactions
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
