package payment

type AddPaymentReq struct {
	RentalID int64   `json:"rental_id" validate:"required,gt=0"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Method   string  `json:"payment_method" validate:"required,oneof=credit_card debit_card paypal cash"`
}
