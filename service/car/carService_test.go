// service/car/car_service_test.go
package carsvc_test

import (
	"context"
	"testing"

	"carrental/model"
	carsvc "carrental/service/car"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type repoMock struct {
	listFn   func(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	byIDFn   func(ctx context.Context, id int64) (*model.Car, error)
	createFn func(ctx context.Context, c *model.Car) error
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *repoMock) ListAvailable(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
	return m.listFn(ctx, f)
}
func (m *repoMock) ByID(ctx context.Context, id int64) (*model.Car, error) { return m.byIDFn(ctx, id) }
func (m *repoMock) Create(ctx context.Context, c *model.Car) error         { return m.createFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id int64) (bool, error)     { return m.deleteFn(ctx, id) }

func validCar() *model.Car {
	return &model.Car{
		Make:               "Toyota",
		Model:              "Corolla",
		Year:               2022,
		Category:           model.CategoryBudget,
		RegistrationNumber: "KA-01-1234",
		DailyRent:          55.50,
	}
}

func TestCreate_Validation(t *testing.T) {
	s := carsvc.New(&repoMock{})

	c := validCar()
	c.Make = ""
	require.Equal(t, carsvc.ErrBadInput, carsvc.Code(s.Create(context.Background(), c)), "empty make")

	c = validCar()
	c.DailyRent = -1
	require.Equal(t, carsvc.ErrBadInput, carsvc.Code(s.Create(context.Background(), c)), "negative rent")

	c = validCar()
	c.Category = "premium"
	require.Equal(t, carsvc.ErrBadInput, carsvc.Code(s.Create(context.Background(), c)), "bad category")
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Car) error {
			c.ID = 42
			c.Status = model.CarAvailable
			return nil
		},
	}
	s := carsvc.New(m)

	c := validCar()
	require.NoError(t, s.Create(context.Background(), c))
	require.Equal(t, int64(42), c.ID)
	require.Equal(t, model.CarAvailable, c.Status)
}

func TestCreate_RegistrationConflict(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Car) error {
			return &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "cars_registration_number_key",
			}
		},
	}
	s := carsvc.New(m)

	err := s.Create(context.Background(), validCar())
	require.Equal(t, carsvc.ErrRegTaken, carsvc.Code(err))
}

func TestDetail_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id int64) (*model.Car, error) {
			return nil, pgx.ErrNoRows
		},
	}
	s := carsvc.New(m)

	_, err := s.Detail(context.Background(), 404)
	require.Equal(t, carsvc.ErrNotFound, carsvc.Code(err))
}

func TestListAvailable_PassesFilterThrough(t *testing.T) {
	mk, yr := "Toyota", 2022
	m := &repoMock{
		listFn: func(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
			require.NotNil(t, f.Make)
			require.Equal(t, mk, *f.Make)
			require.NotNil(t, f.Year)
			require.Equal(t, yr, *f.Year)
			require.Nil(t, f.Category, "unset filters must stay nil")
			require.Nil(t, f.Model, "unset filters must stay nil")
			return []model.Car{}, nil
		},
	}
	s := carsvc.New(m)

	out, err := s.ListAvailable(context.Background(), model.CarFilter{Make: &mk, Year: &yr})
	require.NoError(t, err)
	require.NotNil(t, out, "empty match must be an empty list")
	require.Empty(t, out)
}

func TestDelete(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id int64) (bool, error) { return id == 1, nil },
	}
	s := carsvc.New(m)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.Equal(t, carsvc.ErrNotFound, carsvc.Code(s.Delete(context.Background(), 2)))
}
