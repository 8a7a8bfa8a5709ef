// model/car.go
package model

import "time"

type CarStatus string

const (
	CarAvailable CarStatus = "available"
	CarRented    CarStatus = "rented"
)

type CarCategory string

const (
	CategoryBudget   CarCategory = "budget"
	CategoryMidRange CarCategory = "mid-range"
	CategoryLuxury   CarCategory = "luxury"
)

type Car struct {
	ID                 int64       `json:"car_id"`
	Make               string      `json:"make"`
	Model              string      `json:"model"`
	Year               int         `json:"year"`
	Category           CarCategory `json:"category"`
	RegistrationNumber string      `json:"registration_number"`
	Status             CarStatus   `json:"status"`
	DailyRent          float64     `json:"daily_rent"`
	ImageURL           string      `json:"image_url"`
	CreatedAt          time.Time   `json:"created_at"`
}

// CarFilter narrows the available-car listing. Nil fields mean no
// constraint; present fields are ANDed together.
type CarFilter struct {
	Category *string
	Make     *string
	Model    *string
	Year     *int
}
