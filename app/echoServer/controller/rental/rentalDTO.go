package rental

import "time"

type BookCarReq struct {
	CarID      int64     `json:"car_id" validate:"required,gt=0"`
	RentalDate time.Time `json:"rental_date" validate:"required"`
	ReturnDate time.Time `json:"return_date" validate:"required"`
}
