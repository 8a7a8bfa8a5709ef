// model/payment.go
package model

import "time"

type PaymentStatus string

const (
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
	PaymentPending    PaymentStatus = "pending"
)

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "credit_card"
	MethodDebitCard  PaymentMethod = "debit_card"
	MethodPaypal     PaymentMethod = "paypal"
	MethodCash       PaymentMethod = "cash"
)

type Payment struct {
	ID          int64         `json:"payment_id"`
	RentalID    int64         `json:"rental_id"`
	Amount      float64       `json:"amount"`
	PaymentDate time.Time     `json:"payment_date"`
	Method      PaymentMethod `json:"payment_method"`
	Status      PaymentStatus `json:"status"`
}
