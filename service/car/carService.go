package carsvc

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"carrental/model"
	carrepo "carrental/repository/car"
)

type ErrCode string

const (
	ErrNotFound ErrCode = "CAR_NOT_FOUND"
	ErrRegTaken ErrCode = "REGISTRATION_TAKEN"
	ErrBadInput ErrCode = "BAD_INPUT"
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
	ListAvailable(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	Detail(ctx context.Context, id int64) (*model.Car, error)
	Create(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r carrepo.Repo }

func New(r carrepo.Repo) Service { return &service{r: r} }

func (s *service) ListAvailable(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
	return s.r.ListAvailable(ctx, f)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Car, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, c *model.Car) error {
	if c.Make == "" || c.Model == "" || c.RegistrationNumber == "" || c.DailyRent < 0 {
		return makeErr(ErrBadInput)
	}
	switch c.Category {
	case model.CategoryBudget, model.CategoryMidRange, model.CategoryLuxury:
	default:
		return makeErr(ErrBadInput)
	}
	if err := s.r.Create(ctx, c); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(strings.ToLower(pgErr.ConstraintName), "registration") {
			return makeErr(ErrRegTaken)
		}
		return err
	}
	return nil
}

// Delete cascades to the car's rentals and their payments through the
// schema's foreign keys.
func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return makeErr(ErrNotFound)
	}
	return nil
}
