// Package main car-rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car rental service (users, cars, rentals, payments).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"carrental/app/echoServer"
	authctrl "carrental/app/echoServer/controller/auth"
	carctrl "carrental/app/echoServer/controller/car"
	paymentctrl "carrental/app/echoServer/controller/payment"
	rentalctrl "carrental/app/echoServer/controller/rental"
	"carrental/app/echoServer/validation"
	"carrental/config"
	carrepo "carrental/repository/car"
	paymentrepo "carrental/repository/payment"
	rentalrepo "carrental/repository/rental"
	userrepo "carrental/repository/user"
	authsvc "carrental/service/auth"
	carsvc "carrental/service/car"
	paymentsvc "carrental/service/payment"
	rentalsvc "carrental/service/rental"
	"carrental/util/database"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	cr := carrepo.New(db)
	rr := rentalrepo.New(db)
	pr := paymentrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret, cfg.JWTTTLMinutes)
	cs := carsvc.New(cr)
	rs := rentalsvc.New(db.Pool, rr)
	ps := paymentsvc.New(pr)

	// controllers
	authC := &authctrl.Controller{Svc: as, Log: log}
	carC := &carctrl.Controller{Svc: cs, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Car:     carC,
		Rental:  rentalC,
		Payment: paymentC,

		Users:     ur,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
