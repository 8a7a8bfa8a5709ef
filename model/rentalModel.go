// model/rental.go
package model

import "time"

type RentalStatus string

const (
	RentalOngoing   RentalStatus = "ongoing"
	RentalCompleted RentalStatus = "completed"
	RentalCanceled  RentalStatus = "canceled"
)

type Rental struct {
	ID         int64        `json:"rental_id"`
	UserID     int64        `json:"user_id"`
	CarID      int64        `json:"car_id"`
	RentalDate time.Time    `json:"rental_date"`
	ReturnDate time.Time    `json:"return_date"`
	TotalCost  float64      `json:"total_cost"`
	Status     RentalStatus `json:"status"`
}

// RentalWithCar is a rental row joined with its car's display fields,
// used by the per-user history listing.
type RentalWithCar struct {
	RentalID   int64         `json:"rental_id"`
	RentalDate time.Time     `json:"rental_date"`
	ReturnDate time.Time     `json:"return_date"`
	TotalCost  float64       `json:"total_cost"`
	Status     RentalStatus  `json:"status"`
	Car        RentalCarView `json:"car"`
}

type RentalCarView struct {
	Make      string      `json:"make"`
	Model     string      `json:"model"`
	Year      int         `json:"year"`
	Category  CarCategory `json:"category"`
	ImageURL  string      `json:"image_url"`
	DailyRent float64     `json:"daily_rent"`
}
