package repository

import (
	"context"

	"gorm.io/gorm"

	"rental/internal/model"
)

const bookingViewColumns = "b.booking_id, b.property_id, b.user_id, b.check_in_date, b.check_out_date, " +
	"b.created_at, b.updated_at, p.name AS property_name, u.name AS user_name"

// BookingRepository defines booking persistence operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uint) (*model.BookingView, error)
	List(ctx context.Context) ([]model.BookingView, error)
	ListByUser(ctx context.Context, userID uint) ([]model.BookingView, error)
	Update(ctx context.Context, id uint, fields model.BookingFields) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// views joins bookings with the property and guest names.
func (r *bookingRepository) views(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("Bookings AS b").
		Select(bookingViewColumns).
		Joins("JOIN Properties p ON b.property_id = p.property_id").
		Joins("JOIN Users u ON b.user_id = u.user_id")
}

// Create creates a new booking and fills in its id.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindByID finds a booking by ID.
func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.BookingView, error) {
	var view model.BookingView
	if err := r.views(ctx).Where("b.booking_id = ?", id).Take(&view).Error; err != nil {
		return nil, err
	}
	return &view, nil
}

// List lists every booking.
func (r *bookingRepository) List(ctx context.Context) ([]model.BookingView, error) {
	var views []model.BookingView
	if err := r.views(ctx).Order("b.booking_id").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// ListByUser lists the bookings of one user.
func (r *bookingRepository) ListByUser(ctx context.Context, userID uint) ([]model.BookingView, error) {
	var views []model.BookingView
	if err := r.views(ctx).Where("b.user_id = ?", userID).Order("b.check_in_date").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// Update rewrites every writable column and returns the matched row count.
func (r *bookingRepository) Update(ctx context.Context, id uint, fields model.BookingFields) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("booking_id = ?", id).
		Updates(map[string]interface{}{
			"property_id":    fields.PropertyID,
			"user_id":        fields.UserID,
			"check_in_date":  fields.CheckInDate,
			"check_out_date": fields.CheckOutDate,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// Delete removes a booking and returns the deleted row count.
func (r *bookingRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("booking_id = ?", id).Delete(&model.Booking{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
