package routes

import (
	"net/http"

	"imuhira/internal/handlers"
	"imuhira/internal/middleware"
	"imuhira/internal/utils"
	"imuhira/internal/utils/helpers"

	"github.com/gorilla/mux"
)

const uuidPattern = "{id:[0-9a-fA-F-]{36}}"

type Handlers struct {
	Auth       *handlers.AuthHandler
	Content    *handlers.ContentHandler
	Comments   *handlers.CommentHandler
	Articles   *handlers.ArticleHandler
	Debates    *handlers.DebateHandler
	Subscriber *handlers.SubscriberHandler
	Stats      *handlers.StatsHandler
	Logs       *handlers.AdminLogsHandler
}

func InitRoutes(router *mux.Router, h Handlers, jwtSecret string) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recoverer)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.Error(w, http.StatusNotFound, "not found")
	})

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/content/{slug}", h.Content.GetBySlug).Methods(http.MethodGet)
	api.HandleFunc("/articles", h.Content.ListArticles).Methods(http.MethodGet)
	api.HandleFunc("/debates", h.Content.ListDebates).Methods(http.MethodGet)
	api.HandleFunc("/search", h.Content.Search).Methods(http.MethodGet)

	api.HandleFunc("/comments", h.Comments.List).Methods(http.MethodGet)
	api.HandleFunc("/comments/thread", h.Comments.Thread).Methods(http.MethodGet)
	api.HandleFunc("/comments", h.Comments.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments/"+uuidPattern+"/like", h.Comments.Like).Methods(http.MethodPatch)

	api.HandleFunc("/subscribe", h.Subscriber.Subscribe).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", h.Auth.Login).Methods(http.MethodPost)

	// --- Админка: JWT + роль admin ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.JWTAuth(jwtSecret), middleware.OnlyRole(utils.RoleAdmin))

	admin.HandleFunc("/articles/preview", h.Articles.Preview).Methods(http.MethodPost)
	admin.HandleFunc("/articles", h.Articles.List).Methods(http.MethodGet)
	admin.HandleFunc("/articles", h.Articles.Create).Methods(http.MethodPost)
	admin.HandleFunc("/articles/"+uuidPattern, h.Articles.Get).Methods(http.MethodGet)
	admin.HandleFunc("/articles/"+uuidPattern, h.Articles.Update).Methods(http.MethodPut)
	admin.HandleFunc("/articles/"+uuidPattern, h.Articles.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/articles/"+uuidPattern+"/publish", h.Articles.Publish).Methods(http.MethodPatch)

	admin.HandleFunc("/debates", h.Debates.List).Methods(http.MethodGet)
	admin.HandleFunc("/debates", h.Debates.Create).Methods(http.MethodPost)
	admin.HandleFunc("/debates/"+uuidPattern, h.Debates.Get).Methods(http.MethodGet)
	admin.HandleFunc("/debates/"+uuidPattern, h.Debates.Update).Methods(http.MethodPut)
	admin.HandleFunc("/debates/"+uuidPattern, h.Debates.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/debates/"+uuidPattern+"/publish", h.Debates.Publish).Methods(http.MethodPatch)

	admin.HandleFunc("/comments", h.Comments.ListRecent).Methods(http.MethodGet)
	admin.HandleFunc("/comments/"+uuidPattern, h.Comments.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/comments/"+uuidPattern+"/approval", h.Comments.SetApproval).Methods(http.MethodPatch)

	admin.HandleFunc("/stats", h.Stats.Get).Methods(http.MethodGet)
	admin.HandleFunc("/logs/days", h.Logs.ListDays).Methods(http.MethodGet)
	admin.HandleFunc("/logs", h.Logs.GetLogs).Methods(http.MethodGet)
}
