// app/echoServer/controller/auth/authController.go
package auth

import (
	"log/slog"
	"net/http"

	"carrental/app/echoServer/jwtx"
	"carrental/app/echoServer/respond"
	"carrental/model"
	authsvc "carrental/service/auth"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	Log *slog.Logger
}

// Register a new user
// @Summary      Sign up
// @Description  Register a new user; performs an implicit login and returns a session token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Signup payload"
// @Success      201  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Failure      409  {object}  respond.Envelope "email already registered"
// @Failure      500  {object}  respond.Envelope
// @Router       /v1/signup [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return respond.Err(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return respond.Err(c, http.StatusBadRequest, "validation error")
	}

	payload, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrEmailTaken:
			return respond.Err(c, http.StatusConflict, "email already registered")
		case authsvc.ErrBadRole:
			return respond.Err(c, http.StatusBadRequest, "invalid role")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}

	return respond.OK(c, http.StatusCreated, "User registered successfully", payload)
}

// Login
// @Summary      Login
// @Description  Login with email + password, returns the session token payload
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  respond.Envelope
// @Failure      400  {object}  respond.Envelope
// @Failure      401  {object}  respond.Envelope
// @Failure      500  {object}  respond.Envelope
// @Router       /v1/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return respond.Err(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return respond.Err(c, http.StatusBadRequest, "validation error")
	}

	payload, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrInvalidCreds:
			return respond.Err(c, http.StatusUnauthorized, "incorrect email or password")
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}

	return respond.OK(c, http.StatusOK, "User logged in successfully", payload)
}

// GET /v1/me
func (ct *Controller) Me(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
	}

	payload, err := ct.Svc.CurrentUser(c.Request().Context(), uid)
	if err != nil {
		switch authsvc.Code(err) {
		case authsvc.ErrUserNotFound:
			return respond.Err(c, http.StatusUnauthorized, "invalid or expired token")
		default:
			ct.Log.Error("current user failed", "err", err, "path", c.Path())
			return respond.Err(c, http.StatusInternalServerError, err.Error())
		}
	}
	return respond.OK(c, http.StatusOK, "current user fetched successfully", payload)
}
