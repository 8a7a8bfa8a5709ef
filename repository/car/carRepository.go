package carrepo

import (
	"context"
	"fmt"
	"strings"

	"carrental/model"
	"carrental/util/database"
)

type Repo interface {
	ListAvailable(ctx context.Context, f model.CarFilter) ([]model.Car, error)
	ByID(ctx context.Context, id int64) (*model.Car, error)
	Create(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

const carCols = `car_id, make, model, year, category, registration_number, status, daily_rent, image_url, created_at`

func (r *repo) ListAvailable(ctx context.Context, f model.CarFilter) ([]model.Car, error) {
	// Conjunction: every present filter narrows the result.
	where := []string{"status = 'available'"}
	args := []any{}
	add := func(col string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if f.Category != nil {
		add("category", *f.Category)
	}
	if f.Make != nil {
		add("make", *f.Make)
	}
	if f.Model != nil {
		add("model", *f.Model)
	}
	if f.Year != nil {
		add("year", *f.Year)
	}

	q := `SELECT ` + carCols + ` FROM cars WHERE ` + strings.Join(where, " AND ") + ` ORDER BY car_id`
	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Car{}
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Category,
			&c.RegistrationNumber, &c.Status, &c.DailyRent, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.Car, error) {
	c := &model.Car{}
	err := r.db.Pool.QueryRow(ctx, `SELECT `+carCols+` FROM cars WHERE car_id = $1`, id).
		Scan(&c.ID, &c.Make, &c.Model, &c.Year, &c.Category,
			&c.RegistrationNumber, &c.Status, &c.DailyRent, &c.ImageURL, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) Create(ctx context.Context, c *model.Car) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO cars(make, model, year, category, registration_number, status, daily_rent, image_url)
		VALUES ($1,$2,$3,$4,$5,'available',$6,$7)
		RETURNING car_id, status, created_at`,
		c.Make, c.Model, c.Year, c.Category, c.RegistrationNumber, c.DailyRent, c.ImageURL,
	).Scan(&c.ID, &c.Status, &c.CreatedAt)
}

// Delete removes the car; dependent rentals and their payments go with it
// through the ON DELETE CASCADE foreign keys. Returns false if no row
// matched.
func (r *repo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM cars WHERE car_id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
