package db

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"imuhira/internal/config"
	"imuhira/internal/logger"

	"github.com/avast/retry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// NewPostgresConnection открывает пул и ждёт, пока база ответит на Ping.
func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			p, err := pgxpool.New(ctx, cfg.GetDSN())
			if err != nil {
				return err
			}
			if err := p.Ping(ctx); err != nil {
				p.Close()
				return err
			}
			pool = p
			return nil
		},
		retry.Attempts(cfg.ConnectAttempts()),
		retry.Delay(time.Second),
		retry.OnRetry(func(n uint, err error) {
			logger.Log.Warn("БД недоступна, повтор подключения",
				zap.Uint("attempt", n+1),
				zap.String("dsn", cfg.GetDSNSafe()),
				zap.Error(err),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres %s: %w", cfg.GetDSNSafe(), err)
	}

	return pool, nil
}

// EnsureSchema создаёт таблицы, если их нет. Все выражения идемпотентны.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
