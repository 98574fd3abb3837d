package services

import (
	"context"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/repository"

	"go.uber.org/zap"
)

const statsRecent = 5

type StatsService interface {
	Get(ctx context.Context) (*models.Stats, error)
}

type statsService struct {
	repo repository.StatsRepo
}

func NewStatsService(repo repository.StatsRepo) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Get(ctx context.Context) (*models.Stats, error) {
	st, err := s.repo.Get(ctx, statsRecent)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения статистики (repo)", zap.Error(err))
		return nil, err
	}
	return st, nil
}
