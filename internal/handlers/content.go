package handlers

import (
	"net/http"

	"imuhira/internal/logger"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ContentHandler struct {
	svc services.ContentService
}

func NewContentHandler(svc services.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// GetBySlug godoc
// @Summary Материал по slug на выбранном языке
// @Description Ищет опубликованную статью или дебаты. При недоступности хранилища отдаёт заглушку с placeholder=true.
// @Tags content
// @Produce json
// @Param slug path string true "Slug"
// @Param locale query string false "en | fr | sw | ki"
// @Success 200 {object} models.ContentView
// @Failure 404 {object} helpers.Response
// @Router /api/content/{slug} [get]
func (h *ContentHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	loc := locale(r)

	view, err := h.svc.LoadContentForDisplay(r.Context(), slug, loc)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Материал не отдан", zap.String("slug", slug), zap.Error(err))
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, view)
}

// ListArticles godoc
// @Summary Опубликованные статьи
// @Tags content
// @Produce json
// @Param locale query string false "en | fr | sw | ki"
// @Param limit query int false "по умолчанию 20, максимум 100"
// @Param offset query int false "смещение"
// @Success 200 {array} models.ContentCard
// @Router /api/articles [get]
func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	cards, err := h.svc.ListArticles(r.Context(), locale(r), limit, offset)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, cards)
}

// ListDebates godoc
// @Summary Опубликованные дебаты
// @Tags content
// @Produce json
// @Param locale query string false "en | fr | sw | ki"
// @Param limit query int false "по умолчанию 20, максимум 100"
// @Param offset query int false "смещение"
// @Success 200 {array} models.ContentCard
// @Router /api/debates [get]
func (h *ContentHandler) ListDebates(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	cards, err := h.svc.ListDebates(r.Context(), locale(r), limit, offset)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, cards)
}

// Search godoc
// @Summary Поиск по опубликованным материалам
// @Tags content
// @Produce json
// @Param query query string true "Не короче 2 символов"
// @Param locale query string false "en | fr | sw | ki"
// @Success 200 {array} models.ContentCard
// @Failure 400 {object} helpers.Response
// @Router /api/search [get]
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		q = r.URL.Query().Get("q")
	}
	cards, err := h.svc.Search(r.Context(), q, locale(r))
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, cards)
}
