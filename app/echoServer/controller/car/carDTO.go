package car

type CreateCarReq struct {
	Make               string  `json:"make" validate:"required"`
	Model              string  `json:"model" validate:"required"`
	Year               int     `json:"year" validate:"required,gt=1900"`
	Category           string  `json:"category" validate:"required,oneof=budget mid-range luxury"`
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	DailyRent          float64 `json:"daily_rent" validate:"gte=0"`
	ImageURL           string  `json:"image_url"`
}
