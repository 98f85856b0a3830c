package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/bymariana/site-backend/pkg/config"
	"github.com/labstack/echo/v4"
)

// BookingHandler serves the embed configuration for the third-party
// scheduling widget. Scheduling itself happens entirely inside the widget;
// the backend only hands the page a themed URL.
type BookingHandler struct {
	booking config.Booking
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(booking config.Booking) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// RegisterBookingRoutes registers booking-related routes
func (h *BookingHandler) RegisterBookingRoutes(g *echo.Group) {
	g.GET("/booking/config", h.GetBookingConfig)
}

// GetBookingConfig returns the calendar embed URL with palette query
// parameters applied
func (h *BookingHandler) GetBookingConfig(c echo.Context) error {
	embedURL, err := h.themedURL()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Invalid booking URL configured")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"url":    embedURL,
		"height": h.booking.Height,
	})
}

func (h *BookingHandler) themedURL() (string, error) {
	u, err := url.Parse(h.booking.URL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	setColor(q, "background_color", h.booking.BackgroundColor)
	setColor(q, "text_color", h.booking.TextColor)
	setColor(q, "primary_color", h.booking.AccentColor)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// setColor adds a palette parameter; the embed expects hex values without
// the leading '#'
func setColor(q url.Values, key, value string) {
	value = strings.TrimPrefix(strings.TrimSpace(value), "#")
	if value != "" {
		q.Set(key, value)
	}
}
