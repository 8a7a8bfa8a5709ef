// repository/rental/repo.go
package rentalrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"carrental/model"
	"carrental/util/database"
)

type Repo interface {
	// In-transaction workflow steps. The booking and return flows lock
	// the car row while they run so the status flip and the rental row
	// commit or roll back together.
	GetCarForUpdate(ctx context.Context, tx pgx.Tx, carID int64) (*model.Car, error)
	SetCarStatus(ctx context.Context, tx pgx.Tx, carID int64, status model.CarStatus) error
	Insert(ctx context.Context, tx pgx.Tx, rental *model.Rental) error
	GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error)
	MarkCompleted(ctx context.Context, tx pgx.Tx, rentalID int64) error

	ListOngoing(ctx context.Context) ([]model.Rental, error)
	ListByUser(ctx context.Context, userID int64) ([]model.RentalWithCar, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const rentalCols = `rental_id, user_id, car_id, rental_date, return_date, total_cost, status`

func (r *repo) GetCarForUpdate(ctx context.Context, tx pgx.Tx, carID int64) (*model.Car, error) {
	c := &model.Car{}
	err := tx.QueryRow(ctx, `
		SELECT car_id, make, model, year, category, registration_number, status, daily_rent, image_url, created_at
		FROM cars
		WHERE car_id = $1
		FOR UPDATE`,
		carID,
	).Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Category,
		&c.RegistrationNumber, &c.Status, &c.DailyRent, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) SetCarStatus(ctx context.Context, tx pgx.Tx, carID int64, status model.CarStatus) error {
	_, err := tx.Exec(ctx, `
		UPDATE cars
		SET status = $2
		WHERE car_id = $1`,
		carID, status)
	return err
}

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, rental *model.Rental) error {
	return tx.QueryRow(ctx, `
		INSERT INTO rentals (user_id, car_id, rental_date, return_date, total_cost, status)
		VALUES ($1,$2,$3,$4,$5,'ongoing')
		RETURNING rental_id, status`,
		rental.UserID, rental.CarID, rental.RentalDate, rental.ReturnDate, rental.TotalCost,
	).Scan(&rental.ID, &rental.Status)
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, rentalID int64) (*model.Rental, error) {
	rent := &model.Rental{}
	err := tx.QueryRow(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		WHERE rental_id = $1
		FOR UPDATE`,
		rentalID,
	).Scan(&rent.ID, &rent.UserID, &rent.CarID, &rent.RentalDate, &rent.ReturnDate, &rent.TotalCost, &rent.Status)
	if err != nil {
		return nil, err
	}
	return rent, nil
}

func (r *repo) MarkCompleted(ctx context.Context, tx pgx.Tx, rentalID int64) error {
	_, err := tx.Exec(ctx, `
		UPDATE rentals
		SET status = 'completed'
		WHERE rental_id = $1`,
		rentalID)
	return err
}

func (r *repo) ListOngoing(ctx context.Context) ([]model.Rental, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT `+rentalCols+`
		FROM rentals
		WHERE status = 'ongoing'
		ORDER BY rental_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Rental{}
	for rows.Next() {
		var rent model.Rental
		if err := rows.Scan(&rent.ID, &rent.UserID, &rent.CarID,
			&rent.RentalDate, &rent.ReturnDate, &rent.TotalCost, &rent.Status); err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, rows.Err()
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.RentalWithCar, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT
			r.rental_id, r.rental_date, r.return_date, r.total_cost, r.status,
			c.make, c.model, c.year, c.category, c.image_url, c.daily_rent
		FROM rentals r
		JOIN cars c ON c.car_id = r.car_id
		WHERE r.user_id = $1
		ORDER BY r.rental_date DESC, r.rental_id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.RentalWithCar{}
	for rows.Next() {
		var h model.RentalWithCar
		if err := rows.Scan(
			&h.RentalID, &h.RentalDate, &h.ReturnDate, &h.TotalCost, &h.Status,
			&h.Car.Make, &h.Car.Model, &h.Car.Year, &h.Car.Category, &h.Car.ImageURL, &h.Car.DailyRent,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
