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

type DebateRepo interface {
	Create(ctx context.Context, d *models.Debate) (*models.Debate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Debate, error)
	GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.Debate, error)
	List(ctx context.Context, limit, offset int, onlyPublished bool) ([]*models.Debate, error)
	Search(ctx context.Context, query string, limit int) ([]*models.Debate, error)
	Update(ctx context.Context, d *models.Debate) (*models.Debate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Debate, error)
}

type debateRepo struct{ db *pgxpool.Pool }

func NewDebateRepo(db *pgxpool.Pool) DebateRepo { return &debateRepo{db: db} }

const debateColumns = `
	id, slug, category, author_name,
	title, title_fr, title_sw, title_kym,
	summary, summary_fr, summary_sw, summary_kym,
	proposer_name, proposer_arguments, proposer_arguments_fr, proposer_arguments_sw, proposer_arguments_kym,
	opposer_name, opposer_arguments, opposer_arguments_fr, opposer_arguments_sw, opposer_arguments_kym,
	youtube_video_id, main_image_url, is_published, created_at, updated_at`

func scanDebate(row rowScanner) (*models.Debate, error) {
	var d models.Debate
	err := row.Scan(
		&d.ID, &d.Slug, &d.Category, &d.AuthorName,
		&d.Title, &d.TitleFr, &d.TitleSw, &d.TitleKym,
		&d.Summary, &d.SummaryFr, &d.SummarySw, &d.SummaryKym,
		&d.ProposerName, &d.ProposerArguments, &d.ProposerArgumentsFr, &d.ProposerArgumentsSw, &d.ProposerArgumentsKym,
		&d.OpposerName, &d.OpposerArguments, &d.OpposerArgumentsFr, &d.OpposerArgumentsSw, &d.OpposerArgumentsKym,
		&d.YoutubeVideoID, &d.MainImageURL, &d.IsPublished, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func collectDebates(rows pgx.Rows) ([]*models.Debate, error) {
	defer rows.Close()
	var list []*models.Debate
	for rows.Next() {
		d, err := scanDebate(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func debateArgs(d *models.Debate) []any {
	return []any{
		d.Slug, d.Category, d.AuthorName,
		d.Title, d.TitleFr, d.TitleSw, d.TitleKym,
		d.Summary, d.SummaryFr, d.SummarySw, d.SummaryKym,
		d.ProposerName, d.ProposerArguments, d.ProposerArgumentsFr, d.ProposerArgumentsSw, d.ProposerArgumentsKym,
		d.OpposerName, d.OpposerArguments, d.OpposerArgumentsFr, d.OpposerArgumentsSw, d.OpposerArgumentsKym,
		d.YoutubeVideoID, d.MainImageURL, d.IsPublished,
	}
}

func (r *debateRepo) Create(ctx context.Context, d *models.Debate) (*models.Debate, error) {
	q := `
		INSERT INTO debates (
			slug, category, author_name,
			title, title_fr, title_sw, title_kym,
			summary, summary_fr, summary_sw, summary_kym,
			proposer_name, proposer_arguments, proposer_arguments_fr, proposer_arguments_sw, proposer_arguments_kym,
			opposer_name, opposer_arguments, opposer_arguments_fr, opposer_arguments_sw, opposer_arguments_kym,
			youtube_video_id, main_image_url, is_published
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
		RETURNING ` + debateColumns

	out, err := scanDebate(r.db.QueryRow(ctx, q, debateArgs(d)...))
	if err != nil {
		return nil, classify(err, "create debate")
	}
	return out, nil
}

func (r *debateRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Debate, error) {
	q := `SELECT ` + debateColumns + ` FROM debates WHERE id = $1`
	d, err := scanDebate(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, classify(err, "debate "+id.String())
	}
	return d, nil
}

func (r *debateRepo) GetBySlug(ctx context.Context, slug string, onlyPublished bool) (*models.Debate, error) {
	q := `SELECT ` + debateColumns + ` FROM debates WHERE slug = $1`
	if onlyPublished {
		q += ` AND is_published`
	}
	d, err := scanDebate(r.db.QueryRow(ctx, q, slug))
	if err != nil {
		return nil, classify(err, "debate slug "+slug)
	}
	return d, nil
}

func (r *debateRepo) List(ctx context.Context, limit, offset int, onlyPublished bool) ([]*models.Debate, error) {
	q := `SELECT ` + debateColumns + ` FROM debates`
	if onlyPublished {
		q += ` WHERE is_published`
	}
	q += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, classify(err, "list debates")
	}
	list, err := collectDebates(rows)
	if err != nil {
		return nil, classify(err, "list debates")
	}
	return list, nil
}

func (r *debateRepo) Search(ctx context.Context, query string, limit int) ([]*models.Debate, error) {
	q := `
		SELECT ` + debateColumns + `
		FROM debates
		WHERE is_published
		  AND (title ILIKE $1 OR summary ILIKE $1
		       OR title_fr ILIKE $1 OR title_sw ILIKE $1 OR title_kym ILIKE $1)
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, likePattern(query), limit)
	if err != nil {
		return nil, classify(err, "search debates")
	}
	list, err := collectDebates(rows)
	if err != nil {
		return nil, classify(err, "search debates")
	}
	return list, nil
}

func (r *debateRepo) Update(ctx context.Context, d *models.Debate) (*models.Debate, error) {
	q := `
		UPDATE debates
		SET slug=$1, category=$2, author_name=$3,
		    title=$4, title_fr=$5, title_sw=$6, title_kym=$7,
		    summary=$8, summary_fr=$9, summary_sw=$10, summary_kym=$11,
		    proposer_name=$12, proposer_arguments=$13, proposer_arguments_fr=$14,
		    proposer_arguments_sw=$15, proposer_arguments_kym=$16,
		    opposer_name=$17, opposer_arguments=$18, opposer_arguments_fr=$19,
		    opposer_arguments_sw=$20, opposer_arguments_kym=$21,
		    youtube_video_id=$22, main_image_url=$23, is_published=$24,
		    updated_at=NOW()
		WHERE id=$25
		RETURNING ` + debateColumns

	args := append(debateArgs(d), d.ID)
	out, err := scanDebate(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, classify(err, "update debate "+d.ID.String())
	}
	return out, nil
}

// Delete удаляет дебаты вместе с комментариями (ON DELETE CASCADE).
func (r *debateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM debates WHERE id=$1`, id)
	if err != nil {
		return classify(err, "delete debate "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: debate %s", apperr.ErrNotFound, id)
	}
	return nil
}

func (r *debateRepo) UpdatePublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Debate, error) {
	q := `UPDATE debates SET is_published=$2, updated_at=NOW() WHERE id=$1 RETURNING ` + debateColumns
	d, err := scanDebate(r.db.QueryRow(ctx, q, id, publish))
	if err != nil {
		return nil, classify(err, "publish debate "+id.String())
	}
	return d, nil
}
