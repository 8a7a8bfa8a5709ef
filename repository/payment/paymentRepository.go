package paymentrepo

import (
	"context"

	"carrental/model"
	"carrental/util/database"
)

type Repo interface {
	Insert(ctx context.Context, p *model.Payment) error
	ListAll(ctx context.Context) ([]model.Payment, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, p *model.Payment) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO payments (rental_id, amount, payment_date, payment_method, status)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING payment_id`,
		p.RentalID, p.Amount, p.PaymentDate, p.Method, p.Status,
	).Scan(&p.ID)
}

func (r *repo) ListAll(ctx context.Context) ([]model.Payment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT payment_id, rental_id, amount, payment_date, payment_method, status
		FROM payments
		ORDER BY payment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.PaymentDate, &p.Method, &p.Status); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
