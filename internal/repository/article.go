package repository

import (
	"context"
	"fmt"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.Article, error)
	List(ctx context.Context, limit, offset int, onlyPublished bool) ([]*models.Article, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Article, error)
	Update(ctx context.Context, a *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Article, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `
	id, slug, category, author_name,
	title, title_fr, title_sw, title_kym,
	excerpt, excerpt_fr, excerpt_sw, excerpt_kym,
	content, content_fr, content_sw, content_kym,
	cover_image, video_url, is_published, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*models.Article, error) {
	var a models.Article
	err := row.Scan(
		&a.ID, &a.Slug, &a.Category, &a.AuthorName,
		&a.Title, &a.TitleFr, &a.TitleSw, &a.TitleKym,
		&a.Excerpt, &a.ExcerptFr, &a.ExcerptSw, &a.ExcerptKym,
		&a.Content, &a.ContentFr, &a.ContentSw, &a.ContentKym,
		&a.CoverImage, &a.VideoURL, &a.IsPublished, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]*models.Article, error) {
	defer rows.Close()
	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	q := `
		INSERT INTO articles (
			slug, category, author_name,
			title, title_fr, title_sw, title_kym,
			excerpt, excerpt_fr, excerpt_sw, excerpt_kym,
			content, content_fr, content_sw, content_kym,
			cover_image, video_url, is_published
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		RETURNING ` + articleColumns

	out, err := scanArticle(r.db.QueryRow(ctx, q,
		a.Slug, a.Category, a.AuthorName,
		a.Title, a.TitleFr, a.TitleSw, a.TitleKym,
		a.Excerpt, a.ExcerptFr, a.ExcerptSw, a.ExcerptKym,
		a.Content, a.ContentFr, a.ContentSw, a.ContentKym,
		a.CoverImage, a.VideoURL, a.IsPublished,
	))
	if err != nil {
		return nil, classify(err, "create article")
	}
	return out, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	a, err := scanArticle(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, classify(err, "article "+id.String())
	}
	return a, nil
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	if onlyPublished {
		q += ` AND is_published`
	}
	a, err := scanArticle(r.db.QueryRow(ctx, q, slug))
	if err != nil {
		return nil, classify(err, "article slug "+slug)
	}
	return a, nil
}

func (r *articleRepo) List(ctx context.Context, limit, offset int, onlyPublished bool) ([]*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles`
	if onlyPublished {
		q += ` WHERE is_published`
	}
	q += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, classify(err, "list articles")
	}
	list, err := collectArticles(rows)
	if err != nil {
		return nil, classify(err, "list articles")
	}
	return list, nil
}

// Search ищет только среди опубликованных статей, по базовым полям и переводам заголовка.
func (r *articleRepo) Search(ctx context.Context, query string, limit int) ([]*models.Article, error) {
	q := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE is_published
		  AND (title ILIKE $1 OR excerpt ILIKE $1
		       OR title_fr ILIKE $1 OR title_sw ILIKE $1 OR title_kym ILIKE $1)
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, likePattern(query), limit)
	if err != nil {
		return nil, classify(err, "search articles")
	}
	list, err := collectArticles(rows)
	if err != nil {
		return nil, classify(err, "search articles")
	}
	return list, nil
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) (*models.Article, error) {
	q := `
		UPDATE articles
		SET slug=$1, category=$2, author_name=$3,
		    title=$4, title_fr=$5, title_sw=$6, title_kym=$7,
		    excerpt=$8, excerpt_fr=$9, excerpt_sw=$10, excerpt_kym=$11,
		    content=$12, content_fr=$13, content_sw=$14, content_kym=$15,
		    cover_image=$16, video_url=$17, is_published=$18,
		    updated_at=NOW()
		WHERE id=$19
		RETURNING ` + articleColumns

	out, err := scanArticle(r.db.QueryRow(ctx, q,
		a.Slug, a.Category, a.AuthorName,
		a.Title, a.TitleFr, a.TitleSw, a.TitleKym,
		a.Excerpt, a.ExcerptFr, a.ExcerptSw, a.ExcerptKym,
		a.Content, a.ContentFr, a.ContentSw, a.ContentKym,
		a.CoverImage, a.VideoURL, a.IsPublished,
		a.ID,
	))
	if err != nil {
		return nil, classify(err, "update article "+a.ID.String())
	}
	return out, nil
}

// Delete удаляет статью; комментарии удаляются каскадно внешним ключом.
func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id=$1`, id)
	if err != nil {
		return classify(err, "delete article "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: article %s", apperr.ErrNotFound, id)
	}
	return nil
}

func (r *articleRepo) UpdatePublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Article, error) {
	q := `UPDATE articles SET is_published=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + articleColumns
	a, err := scanArticle(r.db.QueryRow(ctx, q, id, publish))
	if err != nil {
		return nil, classify(err, "publish article "+id.String())
	}
	return a, nil
}
