package repository

import (
	"context"
	"errors"
	"fmt"

	"imuhira/internal/apperr"
	"imuhira/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommentRepo — хранилище комментариев. Сервисы зависят только от этого интерфейса.
type CommentRepo interface {
	// List — комментарии материала, новые сверху.
	List(ctx context.Context, ref models.ContentRef, onlyApproved bool) ([]models.Comment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// Create вставляет комментарий; родитель, если задан, должен принадлежать тому же материалу.
	Create(ctx context.Context, in models.NewComment) (*models.Comment, error)
	// IncrementLike — атомарное likes = likes + 1 на стороне БД.
	IncrementLike(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error)
	ListRecent(ctx context.Context, limit int) ([]models.AdminComment, error)
}

type commentRepo struct{ db *pgxpool.Pool }

func NewCommentRepo(db *pgxpool.Pool) CommentRepo { return &commentRepo{db: db} }

const commentColumns = `id, article_id, debate_id, parent_id, author_name, content, likes, is_approved, created_at`

func scanComment(row rowScanner, c *models.Comment) error {
	return row.Scan(
		&c.ID, &c.ArticleID, &c.DebateID, &c.ParentID,
		&c.AuthorName, &c.Content, &c.Likes, &c.IsApproved, &c.CreatedAt,
	)
}

func (r *commentRepo) List(ctx context.Context, ref models.ContentRef, onlyApproved bool) ([]models.Comment, error) {
	column := "article_id"
	if ref.Kind == models.KindDebate {
		column = "debate_id"
	}
	q := `SELECT ` + commentColumns + ` FROM comments WHERE ` + column + ` = $1`
	if onlyApproved {
		q += ` AND is_approved`
	}
	q += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, q, ref.ID)
	if err != nil {
		return nil, classify(err, "list comments "+ref.String())
	}
	defer rows.Close()

	list := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := scanComment(rows, &c); err != nil {
			return nil, classify(err, "scan comment")
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list comments "+ref.String())
	}
	return list, nil
}

func (r *commentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var c models.Comment
	q := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	if err := scanComment(r.db.QueryRow(ctx, q, id), &c); err != nil {
		return nil, classify(err, "comment "+id.String())
	}
	return &c, nil
}

func (r *commentRepo) Create(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	// Проверка родителя и вставка — одним выражением: нет окна между проверкой и записью.
	const q = `
		INSERT INTO comments (article_id, debate_id, parent_id, author_name, content)
		SELECT $1::uuid, $2::uuid, $3::uuid, $4::text, $5::text
		WHERE $3::uuid IS NULL OR EXISTS (
			SELECT 1 FROM comments p
			WHERE p.id = $3::uuid
			  AND p.article_id IS NOT DISTINCT FROM $1::uuid
			  AND p.debate_id IS NOT DISTINCT FROM $2::uuid
		)
		RETURNING ` + commentColumns

	var c models.Comment
	err := scanComment(r.db.QueryRow(ctx, q,
		in.Ref.ArticleID(), in.Ref.DebateID(), in.ParentID, in.AuthorName, in.Content,
	), &c)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: parent comment %s does not belong to %s", apperr.ErrValidation, in.ParentID, in.Ref)
	}
	if err != nil {
		return nil, classify(err, "create comment on "+in.Ref.String())
	}
	return &c, nil
}

func (r *commentRepo) IncrementLike(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE comments SET likes = likes + 1 WHERE id = $1`, id)
	if err != nil {
		return classify(err, "like comment "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	return nil
}

// Delete не трогает ответы: их parent_id начинает указывать в никуда.
func (r *commentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return classify(err, "delete comment "+id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: comment %s", apperr.ErrNotFound, id)
	}
	return nil
}

func (r *commentRepo) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error) {
	var c models.Comment
	q := `UPDATE comments SET is_approved = $2 WHERE id = $1 RETURNING ` + commentColumns
	if err := scanComment(r.db.QueryRow(ctx, q, id, approved), &c); err != nil {
		return nil, classify(err, "approve comment "+id.String())
	}
	return &c, nil
}

func (r *commentRepo) ListRecent(ctx context.Context, limit int) ([]models.AdminComment, error) {
	const q = `
		SELECT c.id, c.article_id, c.debate_id, c.parent_id, c.author_name, c.content,
		       c.likes, c.is_approved, c.created_at,
		       COALESCE(a.title, d.title, ''), COALESCE(a.slug, d.slug, '')
		FROM comments c
		LEFT JOIN articles a ON a.id = c.article_id
		LEFT JOIN debates d ON d.id = c.debate_id
		ORDER BY c.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, classify(err, "list recent comments")
	}
	defer rows.Close()

	list := make([]models.AdminComment, 0, limit)
	for rows.Next() {
		var ac models.AdminComment
		c := &ac.Comment
		if err := rows.Scan(
			&c.ID, &c.ArticleID, &c.DebateID, &c.ParentID, &c.AuthorName, &c.Content,
			&c.Likes, &c.IsApproved, &c.CreatedAt,
			&ac.ContentTitle, &ac.ContentSlug,
		); err != nil {
			return nil, classify(err, "scan recent comment")
		}
		ac.ContentKind = c.Ref().Kind
		list = append(list, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err, "list recent comments")
	}
	return list, nil
}
