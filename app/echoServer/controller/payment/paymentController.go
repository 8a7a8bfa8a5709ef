package payment

import (
	"log/slog"
	"net/http"

	"carrental/app/echoServer/respond"
	"carrental/model"
	paymentsvc "carrental/service/payment"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc paymentsvc.Service
	Log *slog.Logger
}

// POST /v1/payments
func (h *Controller) Add(c echo.Context) error {
	var req AddPaymentReq
	if err := c.Bind(&req); err != nil {
		return respond.Err(c, http.StatusBadRequest, "invalid JSON")
	}
	if err := c.Validate(&req); err != nil {
		return respond.Err(c, http.StatusBadRequest, "validation error")
	}

	p, err := h.Svc.Add(c.Request().Context(), req.RentalID, req.Amount, model.PaymentMethod(req.Method))
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrBadMethod, paymentsvc.ErrBadAmount:
			return respond.Err(c, http.StatusBadRequest, "bad input")
		default:
			h.Log.Error("payment add", "err", err)
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusCreated, "payment recorded successfully", p)
}

// GET /v1/payments (admin)
func (h *Controller) ListAll(c echo.Context) error {
	rows, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		h.Log.Error("payment list", "err", err)
		return respond.Err(c, http.StatusInternalServerError, err.Error())
	}
	return respond.OK(c, http.StatusOK, "payments fetched successfully", rows)
}
