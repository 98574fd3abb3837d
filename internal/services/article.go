package services

import (
	"context"
	"strings"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/repository"
	"imuhira/internal/utils/helpers"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// ArticleService — редакционные операции со статьями (админка).
type ArticleService interface {
	Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error)
	PreviewHTML(rawHTML string) string
	List(ctx context.Context, limit, offset int) ([]*models.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	Update(ctx context.Context, id uuid.UUID, req models.ArticleRequest) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Article, error)
}

type articleService struct {
	repo   repository.ArticleRepo
	cache  Invalidator
	policy *bluemonday.Policy
}

func NewArticleService(repo repository.ArticleRepo, inv Invalidator) ArticleService {
	return &articleService{repo: repo, cache: inv, policy: editorPolicy()}
}

func (s *articleService) PreviewHTML(rawHTML string) string {
	clean := s.policy.Sanitize(rawHTML)
	logger.Log.Debug("Предпросмотр HTML (sanitize)",
		zap.Int("raw_len", len(rawHTML)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

// build проверяет запрос и переносит его в запись. Публикация не трогается, если IsPublished == nil.
func (s *articleService) build(req models.ArticleRequest, a *models.Article) error {
	slug, err := normalizeSlug(req.Slug)
	if err != nil {
		return err
	}
	title, err := required("title", req.Title)
	if err != nil {
		return err
	}
	content, err := required("content", s.policy.Sanitize(req.Content))
	if err != nil {
		return err
	}
	cover := optStr(req.CoverImage)
	if cover != nil {
		if err := helpers.CheckImageURL("coverImage", *cover); err != nil {
			return err
		}
	}
	video := optStr(req.VideoURL)
	if video != nil {
		if err := helpers.CheckVideoURL("videoUrl", *video); err != nil {
			return err
		}
	}

	a.Slug = slug
	a.Category = orDefault(req.Category, defaultCategory)
	a.AuthorName = orDefault(req.AuthorName, defaultAuthor)
	a.Title = title
	a.TitleFr, a.TitleSw, a.TitleKym = optStr(req.TitleFr), optStr(req.TitleSw), optStr(req.TitleKym)
	a.Excerpt = strings.TrimSpace(req.Excerpt)
	a.ExcerptFr, a.ExcerptSw, a.ExcerptKym = optStr(req.ExcerptFr), optStr(req.ExcerptSw), optStr(req.ExcerptKym)
	a.Content = content
	a.ContentFr = optHTML(s.policy, req.ContentFr)
	a.ContentSw = optHTML(s.policy, req.ContentSw)
	a.ContentKym = optHTML(s.policy, req.ContentKym)
	a.CoverImage = cover
	a.VideoURL = video
	a.IsPublished = derefOr(req.IsPublished, a.IsPublished)
	return nil
}

func (s *articleService) Create(ctx context.Context, req models.ArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.String("slug", req.Slug), zap.Bool("publish", derefOr(req.IsPublished, false)))

	a := &models.Article{}
	if err := s.build(req, a); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.String("slug", a.Slug), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, created.Slug)

	log.Info("Статья создана", zap.String("id", created.ID.String()), zap.Bool("published", created.IsPublished))
	return created, nil
}

func (s *articleService) List(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	list, err := s.repo.List(ctx, limit, offset, false)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *articleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Статья не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) Update(ctx context.Context, id uuid.UUID, req models.ArticleRequest) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.String("id", id.String()))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для обновления не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	oldSlug := a.Slug
	if err := s.build(req, a); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		log.Error("Ошибка обновления статьи (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, oldSlug, updated.Slug)

	log.Info("Статья обновлена", zap.String("id", id.String()), zap.Bool("published", updated.IsPublished))
	return updated, nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.String("id", id.String()))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья для удаления не найдена (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления статьи (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.cache.Invalidate(ctx, a.Slug)

	log.Info("Статья удалена", zap.String("id", id.String()))
	return nil
}

func (s *articleService) SetPublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Изменение статуса публикации", zap.String("id", id.String()), zap.Bool("publish", publish))

	a, err := s.repo.UpdatePublish(ctx, id, publish)
	if err != nil {
		log.Warn("Ошибка обновления статуса публикации (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, a.Slug)

	log.Info("Статус публикации изменён", zap.String("id", id.String()), zap.Bool("published", a.IsPublished))
	return a, nil
}
