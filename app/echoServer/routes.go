package echoServer

import (
	"carrental/app/echoServer/controller/auth"
	"carrental/app/echoServer/controller/car"
	"carrental/app/echoServer/controller/payment"
	"carrental/app/echoServer/controller/rental"
	"carrental/model"
	userrepo "carrental/repository/user"

	"github.com/labstack/echo/v4"
)

type C struct {
	Auth    *auth.Controller
	Car     *car.Controller
	Rental  *rental.Controller
	Payment *payment.Controller

	Users     userrepo.Repo
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public: no token needed.
	pub := e.Group("/v1")
	pub.POST("/signup", c.Auth.Register)
	pub.POST("/login", c.Auth.Login)
	pub.GET("/cars", c.Car.List)
	pub.GET("/cars/:id", c.Car.Detail)

	// Token-gated: any authenticated user.
	authGrp := e.Group("/v1", TokenGate(c.JWTSecret)...)
	authGrp.GET("/me", c.Auth.Me)
	authGrp.POST("/rentals/book", c.Rental.Book)
	authGrp.GET("/rentals/my", c.Rental.MyHistory)
	authGrp.POST("/payments", c.Payment.Add)

	// Admin-only: token plus role allow-list resolved against the store.
	admin := e.Group("/v1", TokenGate(c.JWTSecret)...)
	admin.Use(RequireRole(c.Users, model.RoleAdmin))
	admin.POST("/cars", c.Car.Create)
	admin.DELETE("/cars/:id", c.Car.Delete)
	admin.GET("/rentals/ongoing", c.Rental.Ongoing)
	admin.POST("/rentals/:id/return", c.Rental.Return)
	admin.GET("/payments", c.Payment.ListAll)
}
