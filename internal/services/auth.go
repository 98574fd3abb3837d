package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/utils"

	"go.uber.org/zap"
)

// ErrInvalidCredentials — неверный логин или пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService выдаёт access-токены администратору. Учётная запись одна и задаётся конфигом.
type AuthService struct {
	username     string
	passwordHash string
	secret       string
	ttl          time.Duration
}

func NewAuthService(username, passwordHash, secret string, ttl time.Duration) *AuthService {
	return &AuthService{username: username, passwordHash: passwordHash, secret: secret, ttl: ttl}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.TokenResponse, error) {
	log := logger.WithCtx(ctx)
	if s.passwordHash == "" || s.secret == "" {
		log.Warn("Вход администратора отключён: не задан ADMIN_PASSWORD_HASH или JWT_SECRET")
		return nil, ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// bcrypt проверяем всегда, чтобы время ответа не зависело от имени.
	passOK := utils.CheckPassword(s.passwordHash, req.Password)
	if !userOK || !passOK {
		log.Warn("Неудачная попытка входа администратора", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.secret, s.username, utils.RoleAdmin, s.ttl)
	if err != nil {
		log.Error("Ошибка генерации токена", zap.Error(err))
		return nil, err
	}
	log.Info("Администратор вошёл", zap.String("username", s.username))
	return &models.TokenResponse{AccessToken: token, ExpiresIn: int64(s.ttl.Seconds())}, nil
}
