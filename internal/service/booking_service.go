package service

import (
	"context"

	apperrors "rental/internal/errors"
	"rental/internal/model"
	"rental/internal/repository"
)

// BookingService handles property bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, fields model.BookingFields) (*model.BookingView, error)
	GetBooking(ctx context.Context, id uint) (*model.BookingView, error)
	ListBookings(ctx context.Context) ([]model.BookingView, error)
	ListUserBookings(ctx context.Context, userID uint) ([]model.BookingView, error)
	UpdateBooking(ctx context.Context, id uint, fields model.BookingFields) (*model.BookingView, error)
	DeleteBooking(ctx context.Context, id uint) error
}

type bookingService struct {
	bookings   repository.BookingRepository
	properties repository.PropertyRepository
	users      repository.UserRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookings repository.BookingRepository,
	properties repository.PropertyRepository,
	users repository.UserRepository,
) BookingService {
	return &bookingService{
		bookings:   bookings,
		properties: properties,
		users:      users,
	}
}

// checkBooking validates the date range and that both referenced records exist.
func (s *bookingService) checkBooking(ctx context.Context, fields model.BookingFields) error {
	if fields.PropertyID == 0 || fields.UserID == 0 {
		return apperrors.Validation("property_id and user_id are required")
	}
	if fields.CheckInDate.IsZero() || fields.CheckOutDate.IsZero() {
		return apperrors.Validation("check_in_date and check_out_date are required")
	}
	if !fields.CheckOutDate.After(fields.CheckInDate) {
		return apperrors.Validation("check_out_date must be after check_in_date")
	}

	if _, err := s.properties.FindByID(ctx, fields.PropertyID); err != nil {
		return notFoundOr(err, apperrors.ErrPropertyNotFound, "find property")
	}
	if _, err := s.users.FindByID(ctx, fields.UserID); err != nil {
		return notFoundOr(err, apperrors.ErrUserNotFound, "find user")
	}
	return nil
}

// CreateBooking validates and stores a booking.
func (s *bookingService) CreateBooking(ctx context.Context, fields model.BookingFields) (*model.BookingView, error) {
	if err := s.checkBooking(ctx, fields); err != nil {
		return nil, err
	}

	booking := &model.Booking{
		PropertyID:   fields.PropertyID,
		UserID:       fields.UserID,
		CheckInDate:  fields.CheckInDate,
		CheckOutDate: fields.CheckOutDate,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.Internal(err, "create booking")
	}
	return s.GetBooking(ctx, booking.ID)
}

// GetBooking retrieves a booking by ID.
func (s *bookingService) GetBooking(ctx context.Context, id uint) (*model.BookingView, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrBookingNotFound, "find booking")
	}
	return booking, nil
}

// ListBookings lists every booking.
func (s *bookingService) ListBookings(ctx context.Context) ([]model.BookingView, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, apperrors.Internal(err, "list bookings")
	}
	return bookings, nil
}

// ListUserBookings lists the bookings of one user.
func (s *bookingService) ListUserBookings(ctx context.Context, userID uint) ([]model.BookingView, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err, "list user bookings")
	}
	return bookings, nil
}

// UpdateBooking rewrites a booking and returns the stored result.
func (s *bookingService) UpdateBooking(ctx context.Context, id uint, fields model.BookingFields) (*model.BookingView, error) {
	if err := s.checkBooking(ctx, fields); err != nil {
		return nil, err
	}

	affected, err := s.bookings.Update(ctx, id, fields)
	if err != nil {
		return nil, apperrors.Internal(err, "update booking")
	}
	if affected == 0 {
		return nil, apperrors.ErrBookingNotFound
	}
	return s.GetBooking(ctx, id)
}

// DeleteBooking cancels a booking.
func (s *bookingService) DeleteBooking(ctx context.Context, id uint) error {
	affected, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return apperrors.Internal(err, "delete booking")
	}
	if affected == 0 {
		return apperrors.ErrBookingNotFound
	}
	return nil
}
