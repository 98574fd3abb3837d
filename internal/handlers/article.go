package handlers

import (
	"encoding/json"
	"net/http"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

type publishRequest struct {
	Publish *bool `json:"publish" validate:"required"`
}

// Preview
// @Summary      Предпросмотр статьи
// @Description  Возвращает очищенный HTML (без сохранения в БД)
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body   map[string]string  true  "Сырой HTML статьи"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  helpers.Response
// @Router       /api/admin/articles/preview [post]
func (h *ArticleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"content": h.svc.PreviewHTML(req.Content)})
}

// Create
// @Summary      Создать статью
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        body  body   models.ArticleRequest  true  "Данные статьи"
// @Success      201   {object}  models.Article
// @Failure      400   {object}  helpers.Response
// @Failure      409   {object}  helpers.Response "slug уже занят"
// @Router       /api/admin/articles [post]
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ArticleRequest
	if err := decode(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный запрос на создание статьи", zap.Error(err))
		helpers.FromError(w, err)
		return
	}
	a, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, a)
}

// List
// @Summary      Все статьи, включая черновики
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Produce      json
// @Param        limit   query  int  false  "по умолчанию 20"
// @Param        offset  query  int  false  "смещение"
// @Success      200  {array}  models.Article
// @Router       /api/admin/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	if list == nil {
		list = []*models.Article{}
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Get
// @Summary      Статья по ID
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Produce      json
// @Param        id   path  string  true  "ID статьи"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/articles/{id} [get]
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Update
// @Summary      Обновить статью
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID статьи"
// @Param        body  body  models.ArticleRequest  true  "Данные статьи"
// @Success      200  {object}  models.Article
// @Failure      400  {object}  helpers.Response
// @Failure      404  {object}  helpers.Response
// @Failure      409  {object}  helpers.Response
// @Router       /api/admin/articles/{id} [put]
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	var req models.ArticleRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}
	a, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}

// Delete
// @Summary      Удалить статью вместе с комментариями
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Param        id   path  string  true  "ID статьи"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/articles/{id} [delete]
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Publish
// @Summary      Опубликовать или снять с публикации
// @Tags         admin-articles
// @Security     ApiKeyAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID статьи"
// @Param        body  body  publishRequest  true  "Статус"
// @Success      200  {object}  models.Article
// @Failure      404  {object}  helpers.Response
// @Router       /api/admin/articles/{id}/publish [patch]
func (h *ArticleHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	var req publishRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}
	a, err := h.svc.SetPublish(r.Context(), id, *req.Publish)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, a)
}
