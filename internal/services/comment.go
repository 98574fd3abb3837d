package services

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"imuhira/internal/apperr"
	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/repository"
	"imuhira/internal/thread"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	maxAuthorRunes  = 80
	maxCommentRunes = 5000
)

// CommentService — публичные операции с комментариями и модерация.
// Удовлетворяет thread.Source.
type CommentService interface {
	// ListComments — одобренные комментарии материала, новые сверху.
	// Недоступность хранилища даёт пустой список, а не ошибку.
	ListComments(ctx context.Context, ref models.ContentRef) ([]models.Comment, error)
	Thread(ctx context.Context, ref models.ContentRef) ([]*thread.Node, error)
	CreateComment(ctx context.Context, in models.NewComment) (*models.Comment, error)
	IncrementLike(ctx context.Context, id uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error
	SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error)
	ListRecent(ctx context.Context) ([]models.AdminComment, error)
}

type commentService struct {
	repo        repository.CommentRepo
	strip       *bluemonday.Policy
	recentLimit int
}

func NewCommentService(repo repository.CommentRepo, recentLimit int) CommentService {
	if recentLimit <= 0 {
		recentLimit = 50
	}
	return &commentService{repo: repo, strip: bluemonday.StrictPolicy(), recentLimit: recentLimit}
}

var _ thread.Source = (*commentService)(nil)

func (s *commentService) ListComments(ctx context.Context, ref models.ContentRef) ([]models.Comment, error) {
	log := logger.WithCtx(ctx)
	if !ref.Valid() {
		return nil, fmt.Errorf("%w: content reference is required", apperr.ErrValidation)
	}

	list, err := s.repo.List(ctx, ref, true)
	if apperr.IsStoreUnavailable(err) {
		log.Error("Хранилище комментариев недоступно, отдаём пустой список",
			zap.String("ref", ref.String()), zap.Error(err))
		return []models.Comment{}, nil
	}
	if err != nil {
		log.Error("Ошибка получения комментариев (repo)", zap.String("ref", ref.String()), zap.Error(err))
		return nil, err
	}
	log.Debug("Комментарии получены", zap.String("ref", ref.String()), zap.Int("count", len(list)))
	return list, nil
}

func (s *commentService) Thread(ctx context.Context, ref models.ContentRef) ([]*thread.Node, error) {
	list, err := s.ListComments(ctx, ref)
	if err != nil {
		return nil, err
	}
	return thread.BuildTree(list), nil
}

func (s *commentService) CreateComment(ctx context.Context, in models.NewComment) (*models.Comment, error) {
	log := logger.WithCtx(ctx)

	if !in.Ref.Valid() {
		return nil, fmt.Errorf("%w: exactly one of articleId/debateId is required", apperr.ErrValidation)
	}
	author := s.plain(in.AuthorName)
	content := s.plain(in.Content)
	if author == "" || content == "" {
		log.Warn("Валидация не пройдена: пустое имя или текст", zap.String("ref", in.Ref.String()))
		return nil, fmt.Errorf("%w: author name and content are required", apperr.ErrValidation)
	}
	if utf8.RuneCountInString(author) > maxAuthorRunes {
		return nil, fmt.Errorf("%w: author name is longer than %d characters", apperr.ErrValidation, maxAuthorRunes)
	}
	if utf8.RuneCountInString(content) > maxCommentRunes {
		return nil, fmt.Errorf("%w: content is longer than %d characters", apperr.ErrValidation, maxCommentRunes)
	}
	parent := in.ParentID
	if parent != nil && *parent == uuid.Nil {
		parent = nil
	}

	created, err := s.repo.Create(ctx, models.NewComment{
		Ref:        in.Ref,
		ParentID:   parent,
		AuthorName: author,
		Content:    content,
	})
	if err != nil {
		log.Warn("Ошибка создания комментария (repo)", zap.String("ref", in.Ref.String()), zap.Error(err))
		return nil, err
	}
	log.Info("Комментарий создан",
		zap.String("id", created.ID.String()),
		zap.String("ref", in.Ref.String()),
		zap.Bool("reply", parent != nil))
	return created, nil
}

// plain убирает разметку и крайние пробелы.
func (s *commentService) plain(v string) string {
	return strings.TrimSpace(html.UnescapeString(s.strip.Sanitize(v)))
}

func (s *commentService) IncrementLike(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.IncrementLike(ctx, id); err != nil {
		logger.WithCtx(ctx).Warn("Лайк не засчитан (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Debug("Лайк засчитан", zap.String("id", id.String()))
	return nil
}

func (s *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		logger.WithCtx(ctx).Warn("Ошибка удаления комментария (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	logger.WithCtx(ctx).Info("Комментарий удалён", zap.String("id", id.String()))
	return nil
}

func (s *commentService) SetApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error) {
	c, err := s.repo.SetApproval(ctx, id, approved)
	if err != nil {
		logger.WithCtx(ctx).Warn("Ошибка модерации комментария (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	logger.WithCtx(ctx).Info("Статус модерации изменён", zap.String("id", id.String()), zap.Bool("approved", approved))
	return c, nil
}

func (s *commentService) ListRecent(ctx context.Context) ([]models.AdminComment, error) {
	list, err := s.repo.ListRecent(ctx, s.recentLimit)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения последних комментариев (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}
