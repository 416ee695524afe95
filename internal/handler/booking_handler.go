package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"rental/internal/auth"
	"rental/internal/errors"
	"rental/internal/model"
	"rental/internal/service"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	svc service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// BookingRequest represents the writable fields of a booking. UserID
// defaults to the caller.
type BookingRequest struct {
	PropertyID   uint   `json:"property_id" validate:"required"`
	UserID       uint   `json:"user_id"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02" example:"2025-07-01"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02" example:"2025-07-05"`
}

// BookingResponse represents a booking with its property and guest names.
type BookingResponse struct {
	ID           uint   `json:"id"`
	PropertyID   uint   `json:"property_id"`
	PropertyName string `json:"property_name,omitempty"`
	UserID       uint   `json:"user_id"`
	UserName     string `json:"user_name,omitempty"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

func toBookingResponse(b model.BookingView) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		PropertyID:   b.PropertyID,
		PropertyName: b.PropertyName,
		UserID:       b.UserID,
		UserName:     b.UserName,
		CheckInDate:  b.CheckInDate.Format(DateLayout),
		CheckOutDate: b.CheckOutDate.Format(DateLayout),
	}
}

func toBookingResponses(views []model.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toBookingResponse(v))
	}
	return out
}

// fields resolves the request against the caller. Non-admins can only book
// for themselves.
func (r BookingRequest) fields(claims *auth.Claims) (model.BookingFields, error) {
	userID := r.UserID
	if userID == 0 {
		userID = claims.UserID
	}
	if !claims.IsAdmin() && userID != claims.UserID {
		return model.BookingFields{}, errors.ErrForbidden
	}

	checkIn, err := time.Parse(DateLayout, r.CheckInDate)
	if err != nil {
		return model.BookingFields{}, errors.Validation("check_in_date must be YYYY-MM-DD")
	}
	checkOut, err := time.Parse(DateLayout, r.CheckOutDate)
	if err != nil {
		return model.BookingFields{}, errors.Validation("check_out_date must be YYYY-MM-DD")
	}

	return model.BookingFields{
		PropertyID:   r.PropertyID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}, nil
}

// ownedBooking loads a booking and rejects callers that neither own it nor administer.
func (h *BookingHandler) ownedBooking(c echo.Context, claims *auth.Claims, id uint) (*model.BookingView, error) {
	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return nil, respondError(c, err)
	}
	if !claims.IsAdmin() && booking.UserID != claims.UserID {
		return nil, respondError(c, errors.ErrForbidden)
	}
	return booking, nil
}

// CreateBooking godoc
// @Summary Create booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookingRequest true "Booking"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	fields, err := req.fields(claims)
	if err != nil {
		return respondError(c, err)
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, toBookingResponse(*booking))
}

// ListBookings godoc
// @Summary List bookings (admins see all, users see their own)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var bookings []model.BookingView
	if claims.IsAdmin() {
		bookings, err = h.svc.ListBookings(c.Request().Context())
	} else {
		bookings, err = h.svc.ListUserBookings(c.Request().Context(), claims.UserID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// ListUserBookings godoc
// @Summary List the bookings of a user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} BookingResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{userId}/bookings [get]
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	if _, err := selfOrAdmin(c, userID); err != nil {
		return err
	}

	bookings, err := h.svc.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// GetBooking godoc
// @Summary Get booking by id
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	booking, err := h.ownedBooking(c, claims, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingResponse(*booking))
}

// UpdateBooking godoc
// @Summary Update booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Param request body BookingRequest true "Booking"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	fields, err := req.fields(claims)
	if err != nil {
		return respondError(c, err)
	}
	if _, err := h.ownedBooking(c, claims, id); err != nil {
		return err
	}

	booking, err := h.svc.UpdateBooking(c.Request().Context(), id, fields)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toBookingResponse(*booking))
}

// DeleteBooking godoc
// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}
	if _, err := h.ownedBooking(c, claims, id); err != nil {
		return err
	}

	if err := h.svc.DeleteBooking(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "booking deleted successfully"})
}
