package rental

import (
	"log/slog"
	"net/http"
	"strconv"

	"carrental/app/echoServer/jwtx"
	"carrental/app/echoServer/respond"
	rs "carrental/service/rental"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /v1/rentals/book
// Books for the user identified by the bearer token.
func (h *Controller) Book(c echo.Context) error {
	var req BookCarReq
	if err := c.Bind(&req); err != nil {
		return respond.Err(c, http.StatusBadRequest, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Err(c, http.StatusBadRequest, "validation error")
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
	}

	out, err := h.Svc.Book(c.Request().Context(), uid, req.CarID, req.RentalDate, req.ReturnDate)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrCarNotFound:
			return respond.Err(c, http.StatusNotFound, "car not found")
		case rs.ErrBadDateRange:
			return respond.Err(c, http.StatusBadRequest, "return date must be after rental date")
		default:
			h.Log.Error("rental book", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}

	return respond.OK(c, http.StatusCreated, "car booked successfully", out)
}

// GET /v1/rentals/ongoing (admin)
func (h *Controller) Ongoing(c echo.Context) error {
	rows, err := h.Svc.Ongoing(c.Request().Context())
	if err != nil {
		h.Log.Error("rental ongoing", "err", err)
		return respond.Err(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, http.StatusOK, "ongoing rentals fetched successfully", rows)
}

// POST /v1/rentals/:id/return (admin)
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return respond.Err(c, http.StatusBadRequest, "invalid id")
	}

	out, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		switch rs.Code(err) {
		case rs.ErrRentalNotFound:
			return respond.Err(c, http.StatusNotFound, "rental not found")
		case rs.ErrNotOngoing:
			return respond.Err(c, http.StatusConflict, "rental not ongoing")
		default:
			h.Log.Error("rental return", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusOK, "rental returned successfully", out)
}

// GET /v1/rentals/my
func (h *Controller) MyHistory(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
	}
	rows, err := h.Svc.MyHistory(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("rental history", "err", err)
		return respond.Err(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, http.StatusOK, "rentals fetched successfully", rows)
}
