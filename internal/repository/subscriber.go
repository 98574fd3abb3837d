package repository

import (
	"context"
	"errors"

	"imuhira/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriberRepo interface {
	// Create возвращает created=false, если адрес уже подписан.
	Create(ctx context.Context, email string) (sub *models.Subscriber, created bool, err error)
}

type subscriberRepo struct{ db *pgxpool.Pool }

func NewSubscriberRepo(db *pgxpool.Pool) SubscriberRepo { return &subscriberRepo{db: db} }

func (r *subscriberRepo) Create(ctx context.Context, email string) (*models.Subscriber, bool, error) {
	const q = `
		INSERT INTO subscribers (email) VALUES ($1)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, created_at`

	var s models.Subscriber
	err := r.db.QueryRow(ctx, q, email).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, classify(err, "subscribe "+email)
	}
	return &s, true, nil
}
