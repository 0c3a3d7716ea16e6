package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"seatbooking/internal/core/domain"
	"seatbooking/internal/core/services"
)

type ReservationHandler struct {
	svc *services.ReservationService
}

func NewReservationHandler(svc *services.ReservationService) *ReservationHandler {
	return &ReservationHandler{svc: svc}
}

// Register mounts the reservation routes on the echo instance.
func (h *ReservationHandler) Register(e *echo.Echo) {
	e.GET("/shows/:id/availability", h.GetAvailability)
	e.POST("/shows/:id/locks", h.LockSeats)
	e.DELETE("/shows/:id/locks", h.ReleaseSeats)
	e.POST("/shows/:id/bookings", h.BookSeats)
}

func (h *ReservationHandler) GetAvailability(c echo.Context) error {
	resp, err := h.svc.CheckAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ReservationHandler) LockSeats(c echo.Context) error {
	var req services.LockSeatsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	req.ShowID = c.Param("id")

	resp, err := h.svc.LockSeats(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

func (h *ReservationHandler) ReleaseSeats(c echo.Context) error {
	var req services.ReleaseSeatsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	req.ShowID = c.Param("id")

	if err := h.svc.ReleaseSeats(c.Request().Context(), req); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ReservationHandler) BookSeats(c echo.Context) error {
	var req services.BookSeatsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json body"})
	}

	req.ShowID = c.Param("id")

	resp, err := h.svc.BookSeats(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}

// writeError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an infrastructure failure and stays a 500 without
// leaking details.
func writeError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrShowNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": validation.Error()})
	}

	if conflict := domain.AsSeatConflict(err); conflict != nil {
		return c.JSON(http.StatusConflict, map[string]string{
			"error":   conflict.Error(),
			"seat_id": conflict.SeatID.String(),
			"reason":  string(conflict.Reason),
		})
	}

	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
