package handlers

import (
	"net/http"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

type DebateHandler struct {
	svc services.DebateService
}

func NewDebateHandler(svc services.DebateService) *DebateHandler {
	return &DebateHandler{svc: svc}
}

// Create godoc
// @Summary Создать дебаты
// @Description Пустые названия сторон заменяются на "Proposer"/"Opposer", автор — на "Imuhira Staff".
// @Tags admin-debates
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.DebateRequest true "Данные дебатов"
// @Success 201 {object} models.Debate
// @Failure 400 {object} helpers.Response
// @Failure 409 {object} helpers.Response
// @Router /api/admin/debates [post]
func (h *DebateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.DebateRequest
	if err := decode(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("Невалидный запрос на создание дебатов", zap.Error(err))
		helpers.FromError(w, err)
		return
	}
	d, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, d)
}

// List godoc
// @Summary Все дебаты, включая черновики
// @Tags admin-debates
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.Debate
// @Router /api/admin/debates [get]
func (h *DebateHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := page(r)
	list, err := h.svc.List(r.Context(), limit, offset)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	if list == nil {
		list = []*models.Debate{}
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Get godoc
// @Summary Дебаты по ID
// @Tags admin-debates
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "ID дебатов"
// @Success 200 {object} models.Debate
// @Failure 404 {object} helpers.Response
// @Router /api/admin/debates/{id} [get]
func (h *DebateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	d, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, d)
}

// Update godoc
// @Summary Обновить дебаты
// @Tags admin-debates
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID дебатов"
// @Param input body models.DebateRequest true "Данные дебатов"
// @Success 200 {object} models.Debate
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/admin/debates/{id} [put]
func (h *DebateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	var req models.DebateRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}
	d, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, d)
}

// Delete godoc
// @Summary Удалить дебаты вместе с комментариями
// @Tags admin-debates
// @Security ApiKeyAuth
// @Param id path string true "ID дебатов"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} helpers.Response
// @Router /api/admin/debates/{id} [delete]
func (h *DebateHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Publish godoc
// @Summary Опубликовать или снять с публикации
// @Tags admin-debates
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID дебатов"
// @Param input body publishRequest true "Статус"
// @Success 200 {object} models.Debate
// @Failure 404 {object} helpers.Response
// @Router /api/admin/debates/{id}/publish [patch]
func (h *DebateHandler) Publish(w http.ResponseWriter, r *http.Request) {
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
	d, err := h.svc.SetPublish(r.Context(), id, *req.Publish)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, d)
}
