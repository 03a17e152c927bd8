package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/HomeDecore/decor-booking-api/internal/domain/booking"
	"github.com/HomeDecore/decor-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) (int64, error) {

	res := r.db.WithContext(ctx).Save(b)
	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.Filter,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.UserEmail != "" {
		q = q.Where("user_email = ?", f.UserEmail)
	}
	if f.DecoratorEmail != "" {
		q = q.Where("decorator_email = ?", f.DecoratorEmail)
	}
	if f.WorkingStatus != "" {
		q = q.Where("working_status = ?", f.WorkingStatus)
	}
	if f.ExcludeFinished {
		q = q.Where("working_status <> ?", string(domain.StatusFinishedWork))
	}
	if f.NewestFirst {
		q = q.Order("created_at DESC")
	} else {
		q = q.Order("id ASC")
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Decorator side effect
// --------------------------------------------------

func (r *BookingGormRepository) SetDecoratorAvailability(
	ctx context.Context,
	decoratorID string,
	status string,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Decorator{}).
		Where("id = ?", decoratorID).
		Update("working_status", status)
	return res.RowsAffected, res.Error
}

// --------------------------------------------------
// Payment
// --------------------------------------------------

func (r *BookingGormRepository) FindPaymentByTransactionID(
	ctx context.Context,
	transactionID string,
) (*models.Payment, error) {

	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) CreatePayment(
	ctx context.Context,
	p *models.Payment,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *BookingGormRepository) ListPaymentsByEmail(
	ctx context.Context,
	email string,
) ([]models.Payment, error) {

	q := r.db.WithContext(ctx).Model(&models.Payment{})
	if email != "" {
		q = q.Where("customer_email = ?", email)
	}

	var payments []models.Payment
	if err := q.Order("paid_at DESC").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *BookingGormRepository) CountByWorkingStatus(
	ctx context.Context,
) ([]domain.StatusCount, error) {

	var counts []domain.StatusCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("working_status AS working_status, COUNT(*) AS count").
		Group("working_status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *BookingGormRepository) CountByCategory(
	ctx context.Context,
) ([]domain.CategoryCount, error) {

	var counts []domain.CategoryCount
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("category AS category, COUNT(*) AS count").
		Group("category").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
