package model

import "time"

// Booking reserves a property for a user between two dates.
type Booking struct {
	ID           uint      `json:"id" gorm:"column:booking_id;primaryKey;autoIncrement"`
	PropertyID   uint      `json:"property_id" gorm:"not null;index"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	CheckInDate  time.Time `json:"check_in_date" gorm:"type:date;not null"`
	CheckOutDate time.Time `json:"check_out_date" gorm:"type:date;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the table name used by the existing rental schema.
func (Booking) TableName() string { return "Bookings" }

// BookingView is a booking joined with the names of its property and guest.
type BookingView struct {
	Booking
	PropertyName string `json:"property_name"`
	UserName     string `json:"user_name"`
}

// BookingFields are the writable columns of a booking.
type BookingFields struct {
	PropertyID   uint
	UserID       uint
	CheckInDate  time.Time
	CheckOutDate time.Time
}
