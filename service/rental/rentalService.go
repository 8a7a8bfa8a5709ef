package rentalsvc

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"carrental/model"
	rentalrepo "carrental/repository/rental"
)

// errors used by controllers

type ErrCode string

const (
	ErrCarNotFound    ErrCode = "CAR_NOT_FOUND"
	ErrRentalNotFound ErrCode = "RENTAL_NOT_FOUND"
	ErrBadDateRange   ErrCode = "BAD_DATE_RANGE"
	ErrNotOngoing     ErrCode = "NOT_ONGOING"
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

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Service interface {
	// Book rents a car to the user for [rentalDate, returnDate).
	Book(ctx context.Context, userID, carID int64, rentalDate, returnDate time.Time) (*model.Rental, error)

	// Return marks an ongoing rental completed and frees the car.
	Return(ctx context.Context, rentalID int64) (*model.Rental, error)

	Ongoing(ctx context.Context) ([]model.Rental, error)
	MyHistory(ctx context.Context, userID int64) ([]model.RentalWithCar, error)
}

type service struct {
	db TxBeginner
	r  rentalrepo.Repo
}

func New(db TxBeginner, r rentalrepo.Repo) Service {
	return &service{db: db, r: r}
}

// RentalDays is the whole-day duration of a booking. Partial days do not
// count; a non-positive result makes the booking invalid.
func RentalDays(rentalDate, returnDate time.Time) int {
	return int(returnDate.Sub(rentalDate) / (24 * time.Hour))
}

// Book validates the date range, computes the cost, inserts the rental
// and flips the car to rented. The flip happens strictly after all
// validation passes, and shares the transaction with the insert: a
// rejected booking never leaves the car locked.
func (s *service) Book(ctx context.Context, userID, carID int64, rentalDate, returnDate time.Time) (rental *model.Rental, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	car, err := s.r.GetCarForUpdate(ctx, tx, carID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrCarNotFound)
		}
		return nil, err
	}

	days := RentalDays(rentalDate, returnDate)
	if days <= 0 {
		return nil, makeErr(ErrBadDateRange)
	}
	cost := car.DailyRent * float64(days)

	rental = &model.Rental{
		UserID:     userID,
		CarID:      carID,
		RentalDate: rentalDate,
		ReturnDate: returnDate,
		TotalCost:  cost,
	}
	if err = s.r.Insert(ctx, tx, rental); err != nil {
		return nil, err
	}
	if err = s.r.SetCarStatus(ctx, tx, carID, model.CarRented); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *service) Return(ctx context.Context, rentalID int64) (rental *model.Rental, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	rental, err = s.r.GetForUpdate(ctx, tx, rentalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrRentalNotFound)
		}
		return nil, err
	}
	if rental.Status != model.RentalOngoing {
		return nil, makeErr(ErrNotOngoing)
	}

	if err = s.r.MarkCompleted(ctx, tx, rental.ID); err != nil {
		return nil, err
	}
	if err = s.r.SetCarStatus(ctx, tx, rental.CarID, model.CarAvailable); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	rental.Status = model.RentalCompleted
	return rental, nil
}

func (s *service) Ongoing(ctx context.Context) ([]model.Rental, error) {
	return s.r.ListOngoing(ctx)
}

func (s *service) MyHistory(ctx context.Context, userID int64) ([]model.RentalWithCar, error) {
	return s.r.ListByUser(ctx, userID)
}
