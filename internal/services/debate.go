package services

import (
	"context"
	"fmt"

	"imuhira/internal/apperr"
	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/repository"
	"imuhira/internal/utils/helpers"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// DebateService — редакционные операции с дебатами (админка).
type DebateService interface {
	Create(ctx context.Context, req models.DebateRequest) (*models.Debate, error)
	List(ctx context.Context, limit, offset int) ([]*models.Debate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Debate, error)
	Update(ctx context.Context, id uuid.UUID, req models.DebateRequest) (*models.Debate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetPublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Debate, error)
}

type debateService struct {
	repo   repository.DebateRepo
	cache  Invalidator
	policy *bluemonday.Policy
}

func NewDebateService(repo repository.DebateRepo, inv Invalidator) DebateService {
	return &debateService{repo: repo, cache: inv, policy: editorPolicy()}
}

func (s *debateService) build(req models.DebateRequest, d *models.Debate) error {
	slug, err := normalizeSlug(req.Slug)
	if err != nil {
		return err
	}
	title, err := required("title", req.Title)
	if err != nil {
		return err
	}
	category, err := required("category", req.Category)
	if err != nil {
		return err
	}

	var video *string
	if raw := optStr(req.YoutubeVideoID); raw != nil {
		id, ok := helpers.ExtractYouTubeID(*raw)
		if !ok {
			return fmt.Errorf("%w: youtubeVideoId is not a valid YouTube id or link", apperr.ErrValidation)
		}
		video = &id
	}
	image := optStr(req.MainImageURL)
	if image != nil {
		if err := helpers.CheckImageURL("mainImageUrl", *image); err != nil {
			return err
		}
	}

	d.Slug = slug
	d.Category = category
	d.AuthorName = orDefault(req.AuthorName, defaultAuthor)
	d.Title = title
	d.TitleFr, d.TitleSw, d.TitleKym = optStr(req.TitleFr), optStr(req.TitleSw), optStr(req.TitleKym)
	d.Summary = s.policy.Sanitize(req.Summary)
	d.SummaryFr = optHTML(s.policy, req.SummaryFr)
	d.SummarySw = optHTML(s.policy, req.SummarySw)
	d.SummaryKym = optHTML(s.policy, req.SummaryKym)

	d.ProposerName = orDefault(req.ProposerName, defaultProposer)
	d.ProposerArguments = s.policy.Sanitize(req.ProposerArguments)
	d.ProposerArgumentsFr = optHTML(s.policy, req.ProposerArgumentsFr)
	d.ProposerArgumentsSw = optHTML(s.policy, req.ProposerArgumentsSw)
	d.ProposerArgumentsKym = optHTML(s.policy, req.ProposerArgumentsKym)

	d.OpposerName = orDefault(req.OpposerName, defaultOpposer)
	d.OpposerArguments = s.policy.Sanitize(req.OpposerArguments)
	d.OpposerArgumentsFr = optHTML(s.policy, req.OpposerArgumentsFr)
	d.OpposerArgumentsSw = optHTML(s.policy, req.OpposerArgumentsSw)
	d.OpposerArgumentsKym = optHTML(s.policy, req.OpposerArgumentsKym)

	d.YoutubeVideoID = video
	d.MainImageURL = image
	d.IsPublished = derefOr(req.IsPublished, d.IsPublished)
	return nil
}

func (s *debateService) Create(ctx context.Context, req models.DebateRequest) (*models.Debate, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание дебатов", zap.String("slug", req.Slug), zap.String("category", req.Category))

	d := &models.Debate{}
	if err := s.build(req, d); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Create(ctx, d)
	if err != nil {
		log.Error("Ошибка создания дебатов (repo)", zap.String("slug", d.Slug), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, created.Slug)

	log.Info("Дебаты созданы", zap.String("id", created.ID.String()), zap.Bool("published", created.IsPublished))
	return created, nil
}

func (s *debateService) List(ctx context.Context, limit, offset int) ([]*models.Debate, error) {
	list, err := s.repo.List(ctx, limit, offset, false)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения списка дебатов (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *debateService) GetByID(ctx context.Context, id uuid.UUID) (*models.Debate, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Дебаты не найдены (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (s *debateService) Update(ctx context.Context, id uuid.UUID, req models.DebateRequest) (*models.Debate, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление дебатов", zap.String("id", id.String()))

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Дебаты для обновления не найдены (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	oldSlug := d.Slug
	if err := s.build(req, d); err != nil {
		log.Warn("Валидация не пройдена", zap.Error(err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, d)
	if err != nil {
		log.Error("Ошибка обновления дебатов (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, oldSlug, updated.Slug)

	log.Info("Дебаты обновлены", zap.String("id", id.String()), zap.Bool("published", updated.IsPublished))
	return updated, nil
}

// Delete удаляет дебаты вместе с комментариями (каскад в БД).
func (s *debateService) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление дебатов", zap.String("id", id.String()))

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Дебаты для удаления не найдены (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Ошибка удаления дебатов (repo)", zap.String("id", id.String()), zap.Error(err))
		return err
	}
	s.cache.Invalidate(ctx, d.Slug)

	log.Info("Дебаты удалены", zap.String("id", id.String()))
	return nil
}

func (s *debateService) SetPublish(ctx context.Context, id uuid.UUID, publish bool) (*models.Debate, error) {
	log := logger.WithCtx(ctx)
	log.Info("Изменение статуса публикации дебатов", zap.String("id", id.String()), zap.Bool("publish", publish))

	d, err := s.repo.UpdatePublish(ctx, id, publish)
	if err != nil {
		log.Warn("Ошибка обновления статуса публикации (repo)", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}
	s.cache.Invalidate(ctx, d.Slug)

	log.Info("Статус публикации дебатов изменён", zap.String("id", id.String()), zap.Bool("published", d.IsPublished))
	return d, nil
}
