package car

import (
	"log/slog"
	"net/http"
	"strconv"

	"carrental/app/echoServer/respond"
	"carrental/model"
	carsvc "carrental/service/car"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc carsvc.Service
	Log *slog.Logger
}

// GET /v1/cars?category=&make=&model=&year=
// Lists available cars; each present query param narrows the result.
// No matches is an empty list, not an error.
func (h *Controller) List(c echo.Context) error {
	var f model.CarFilter
	if v := c.QueryParam("category"); v != "" {
		f.Category = &v
	}
	if v := c.QueryParam("make"); v != "" {
		f.Make = &v
	}
	if v := c.QueryParam("model"); v != "" {
		f.Model = &v
	}
	if v := c.QueryParam("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return respond.Err(c, http.StatusBadRequest, "invalid year")
		}
		f.Year = &y
	}

	cars, err := h.Svc.ListAvailable(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("car list", "err", err)
		return respond.Err(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, http.StatusOK, "cars list fetched successfully", cars)
}

// GET /v1/cars/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return respond.Err(c, http.StatusBadRequest, "invalid id")
	}

	car, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		switch carsvc.Code(err) {
		case carsvc.ErrNotFound:
			return respond.Err(c, http.StatusNotFound, "car not found")
		default:
			h.Log.Error("car detail", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusOK, "car fetched successfully", car)
}

// POST /v1/cars (admin)
func (h *Controller) Create(c echo.Context) error {
	var req CreateCarReq
	if err := c.Bind(&req); err != nil {
		return respond.Err(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return respond.Err(c, http.StatusBadRequest, "validation error")
	}

	car := &model.Car{
		Make:               req.Make,
		Model:              req.Model,
		Year:               req.Year,
		Category:           model.CarCategory(req.Category),
		RegistrationNumber: req.RegistrationNumber,
		DailyRent:          req.DailyRent,
		ImageURL:           req.ImageURL,
	}
	if err := h.Svc.Create(c.Request().Context(), car); err != nil {
		switch carsvc.Code(err) {
		case carsvc.ErrRegTaken:
			return respond.Err(c, http.StatusConflict, "registration number already exists")
		case carsvc.ErrBadInput:
			return respond.Err(c, http.StatusBadRequest, "bad input")
		default:
			h.Log.Error("car create", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusCreated, "car created successfully", car)
}

// DELETE /v1/cars/:id (admin)
// Removes the car and, through the cascade contract, its rentals and
// their payments.
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return respond.Err(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		switch carsvc.Code(err) {
		case carsvc.ErrNotFound:
			return respond.Err(c, http.StatusNotFound, "car not found")
		default:
			h.Log.Error("car delete", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusOK, "car deleted successfully", nil)
}
