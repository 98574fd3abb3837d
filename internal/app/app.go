package app

import (
	"context"

	"imuhira/internal/cache"
	"imuhira/internal/config"
	"imuhira/internal/db"
	"imuhira/internal/handlers"
	"imuhira/internal/logger"
	"imuhira/internal/repository"
	"imuhira/internal/routes"
	"imuhira/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// InitApp собирает приложение: репозитории -> сервисы -> хендлеры -> маршруты.
// cleanup закрывает пул БД.
func InitApp(ctx context.Context, cfg *config.Config) (router *mux.Router, cleanup func(), err error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup = conn.Close

	if cfg.DbAutoMigrate {
		if err := db.EnsureSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, nil, err
		}
		logger.Log.Info("Схема БД применена")
	}

	// Репозитории
	articleRepo := repository.NewArticleRepo(conn)
	debateRepo := repository.NewDebateRepo(conn)
	commentRepo := repository.NewCommentRepo(conn)
	subscriberRepo := repository.NewSubscriberRepo(conn)
	statsRepo := repository.NewStatsRepo(conn)

	// Сервисы
	contentCache := cache.New(ctx, cfg)
	contentSvc := services.NewContentService(articleRepo, debateRepo, contentCache, cfg.CacheTTLDuration())
	commentSvc := services.NewCommentService(commentRepo, cfg.AdminCommentsLimitInt())
	articleSvc := services.NewArticleService(articleRepo, contentSvc)
	debateSvc := services.NewDebateService(debateRepo, contentSvc)
	authSvc := services.NewAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.AccessTTL())
	subscriberSvc := services.NewSubscriberService(subscriberRepo)
	statsSvc := services.NewStatsService(statsRepo)

	// Маршруты
	router = mux.NewRouter()
	routes.InitRoutes(router, routes.Handlers{
		Auth:       handlers.NewAuthHandler(authSvc),
		Content:    handlers.NewContentHandler(contentSvc),
		Comments:   handlers.NewCommentHandler(commentSvc),
		Articles:   handlers.NewArticleHandler(articleSvc),
		Debates:    handlers.NewDebateHandler(debateSvc),
		Subscriber: handlers.NewSubscriberHandler(subscriberSvc),
		Stats:      handlers.NewStatsHandler(statsSvc),
		Logs:       handlers.NewAdminLogsHandler(cfg.LogDir),
	}, cfg.JWTSecret)

	logger.Log.Info("Приложение инициализировано", zap.String("db", cfg.GetDSNSafe()))
	return router, cleanup, nil
}
