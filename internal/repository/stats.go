package repository

import (
	"context"

	"imuhira/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo interface {
	Get(ctx context.Context, recent int) (*models.Stats, error)
}

type statsRepo struct{ db *pgxpool.Pool }

func NewStatsRepo(db *pgxpool.Pool) StatsRepo { return &statsRepo{db: db} }

// Get собирает сводку одним батчем: счётчики и последние записи каждого типа.
func (r *statsRepo) Get(ctx context.Context, recent int) (*models.Stats, error) {
	st := &models.Stats{
		RecentDebates:  make([]models.RecentItem, 0, recent),
		RecentArticles: make([]models.RecentItem, 0, recent),
		RecentComments: make([]models.RecentComment, 0, recent),
	}

	b := &pgx.Batch{}
	b.Queue(`
		SELECT
			(SELECT COUNT(*) FROM debates),
			(SELECT COUNT(*) FROM debates WHERE is_published),
			(SELECT COUNT(*) FROM articles),
			(SELECT COUNT(*) FROM articles WHERE is_published),
			(SELECT COUNT(*) FROM comments),
			(SELECT COUNT(*) FROM comments WHERE NOT is_approved),
			(SELECT COUNT(*) FROM subscribers)`).
		QueryRow(func(row pgx.Row) error {
			return row.Scan(
				&st.TotalDebates, &st.PublishedDebates,
				&st.TotalArticles, &st.PublishedArticles,
				&st.TotalComments, &st.PendingComments,
				&st.TotalSubscribers,
			)
		})

	b.Queue(`SELECT id, title, slug, is_published, created_at FROM debates ORDER BY created_at DESC LIMIT $1`, recent).
		Query(func(rows pgx.Rows) error {
			items, err := collectRecent(rows)
			st.RecentDebates = append(st.RecentDebates, items...)
			return err
		})

	b.Queue(`SELECT id, title, slug, is_published, created_at FROM articles ORDER BY created_at DESC LIMIT $1`, recent).
		Query(func(rows pgx.Rows) error {
			items, err := collectRecent(rows)
			st.RecentArticles = append(st.RecentArticles, items...)
			return err
		})

	b.Queue(`SELECT id, author_name, content, is_approved, created_at FROM comments ORDER BY created_at DESC LIMIT $1`, recent).
		Query(func(rows pgx.Rows) error {
			for rows.Next() {
				var c models.RecentComment
				if err := rows.Scan(&c.ID, &c.AuthorName, &c.Content, &c.IsApproved, &c.CreatedAt); err != nil {
					return err
				}
				st.RecentComments = append(st.RecentComments, c)
			}
			return rows.Err()
		})

	if err := r.db.SendBatch(ctx, b).Close(); err != nil {
		return nil, classify(err, "stats")
	}
	return st, nil
}

func collectRecent(rows pgx.Rows) ([]models.RecentItem, error) {
	var items []models.RecentItem
	for rows.Next() {
		var it models.RecentItem
		if err := rows.Scan(&it.ID, &it.Title, &it.Slug, &it.IsPublished, &it.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
