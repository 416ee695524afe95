package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rental/internal/config"
	"rental/internal/errors"
	"rental/internal/handler"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// AccessTokenParser validates bearer tokens for the secured routes.
type AccessTokenParser interface {
	ParseAccessToken(tokenString string) (*jwt.Token, error)
}

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Property *handler.PropertyHandler
	Booking  *handler.BookingHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, db Pinger, tokens AccessTokenParser, h Handlers) {
	e.HideBanner = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Error().Err(err).Msg("health check: database unreachable")
			return c.JSON(http.StatusServiceUnavailable, errors.ErrorResponse{
				Error: "database unreachable",
				Code:  "UNHEALTHY",
			})
		}
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes. A bearer token on register is optional and only
	// matters for admin registration.
	api.POST("/auth/register", h.Auth.Register, bearerAuth(tokens, true))
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)
	api.POST("/auth/logout", h.Auth.Logout)

	// Secured routes (require an access token)
	secured := api.Group("", bearerAuth(tokens, false))

	secured.GET("/me", h.Auth.Me)

	// User routes
	secured.GET("/users", h.User.ListUsers, handler.RequireAdmin)
	secured.GET("/users/:id", h.User.GetUser)
	secured.PUT("/users/:id", h.User.UpdateUser)
	secured.DELETE("/users/:id", h.User.DeleteUser, handler.RequireAdmin)
	secured.PUT("/users/:userId/password", h.Auth.ChangePassword)
	secured.GET("/users/:userId/bookings", h.Booking.ListUserBookings)

	// Property routes
	secured.GET("/properties", h.Property.ListProperties)
	secured.GET("/properties/:id", h.Property.GetProperty)
	secured.POST("/properties", h.Property.CreateProperty, handler.RequireAdmin)
	secured.PUT("/properties/:id", h.Property.UpdateProperty, handler.RequireAdmin)
	secured.DELETE("/properties/:id", h.Property.DeleteProperty, handler.RequireAdmin)

	// Booking routes
	secured.GET("/bookings", h.Booking.ListBookings)
	secured.POST("/bookings", h.Booking.CreateBooking)
	secured.GET("/bookings/:id", h.Booking.GetBooking)
	secured.PUT("/bookings/:id", h.Booking.UpdateBooking)
	secured.DELETE("/bookings/:id", h.Booking.DeleteBooking)
}

// bearerAuth validates the Authorization header with echo-jwt. Only access
// tokens pass; refresh tokens are rejected. With optional set, requests
// without the header go through unauthenticated.
func bearerAuth(tokens AccessTokenParser, optional bool) echo.MiddlewareFunc {
	cfg := echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  handler.ClaimsContextKey,
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return tokens.ParseAccessToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or invalid access token",
				Code:  "INVALID_TOKEN",
			})
		},
	}
	if optional {
		cfg.Skipper = func(c echo.Context) bool {
			return c.Request().Header.Get(echo.HeaderAuthorization) == ""
		}
	}
	return echojwt.WithConfig(cfg)
}

// requestLogger writes one zerolog line per request. Bodies are never logged.
func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Status >= http.StatusInternalServerError {
				event = log.Error()
			} else if v.Status >= http.StatusBadRequest {
				event = log.Warn()
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns the validator installed on the echo instance.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
