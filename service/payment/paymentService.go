package paymentsvc

import (
	"context"
	"errors"
	"time"

	"carrental/model"
	paymentrepo "carrental/repository/payment"
)

type ErrCode string

const (
	ErrBadMethod ErrCode = "BAD_METHOD"
	ErrBadAmount ErrCode = "BAD_AMOUNT"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	// Add appends a payment record. No gateway is consulted: every
	// accepted record is written with status successful, a known
	// simplification of this system.
	Add(ctx context.Context, rentalID int64, amount float64, method model.PaymentMethod) (*model.Payment, error)
	ListAll(ctx context.Context) ([]model.Payment, error)
}

type service struct {
	r   paymentrepo.Repo
	now func() time.Time
}

func New(r paymentrepo.Repo) Service {
	return &service{r: r, now: time.Now}
}

func (s *service) Add(ctx context.Context, rentalID int64, amount float64, method model.PaymentMethod) (*model.Payment, error) {
	switch method {
	case model.MethodCreditCard, model.MethodDebitCard, model.MethodPaypal, model.MethodCash:
	default:
		return nil, makeErr(ErrBadMethod)
	}
	if amount < 0 {
		return nil, makeErr(ErrBadAmount)
	}

	p := &model.Payment{
		RentalID:    rentalID,
		Amount:      amount,
		PaymentDate: s.now().UTC(),
		Method:      method,
		Status:      model.PaymentSuccessful,
	}
	if err := s.r.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ListAll(ctx context.Context) ([]model.Payment, error) {
	return s.r.ListAll(ctx)
}
