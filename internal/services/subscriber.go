package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"imuhira/internal/apperr"
	"imuhira/internal/logger"
	"imuhira/internal/repository"

	"go.uber.org/zap"
)

type SubscriberService interface {
	// Subscribe возвращает created=false, если адрес уже был подписан.
	Subscribe(ctx context.Context, email string) (created bool, err error)
}

type subscriberService struct {
	repo repository.SubscriberRepo
}

func NewSubscriberService(repo repository.SubscriberRepo) SubscriberService {
	return &subscriberService{repo: repo}
}

func (s *subscriberService) Subscribe(ctx context.Context, email string) (bool, error) {
	log := logger.WithCtx(ctx)
	email = strings.ToLower(strings.TrimSpace(email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return false, fmt.Errorf("%w: invalid email address", apperr.ErrValidation)
	}

	_, created, err := s.repo.Create(ctx, email)
	if err != nil {
		log.Error("Ошибка подписки (repo)", zap.Error(err))
		return false, err
	}
	log.Info("Подписка", zap.Bool("created", created))
	return created, nil
}
