package handlers

import (
	"net/http"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

type CommentHandler struct {
	svc services.CommentService
}

func NewCommentHandler(svc services.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func refFromQuery(r *http.Request) (models.ContentRef, error) {
	articleID, err := queryUUID(r, "articleId")
	if err != nil {
		return models.ContentRef{}, err
	}
	debateID, err := queryUUID(r, "debateId")
	if err != nil {
		return models.ContentRef{}, err
	}
	return models.NewContentRef(articleID, debateID)
}

// List godoc
// @Summary Комментарии материала (плоский список, новые сверху)
// @Tags comments
// @Produce json
// @Param articleId query string false "ID статьи"
// @Param debateId query string false "ID дебатов"
// @Success 200 {array} models.Comment
// @Failure 400 {object} helpers.Response
// @Router /api/comments [get]
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromQuery(r)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	list, err := h.svc.ListComments(r.Context(), ref)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

// Thread godoc
// @Summary Комментарии материала деревом ответов
// @Tags comments
// @Produce json
// @Param articleId query string false "ID статьи"
// @Param debateId query string false "ID дебатов"
// @Success 200 {array} thread.Node
// @Failure 400 {object} helpers.Response
// @Router /api/comments/thread [get]
func (h *CommentHandler) Thread(w http.ResponseWriter, r *http.Request) {
	ref, err := refFromQuery(r)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	tree, err := h.svc.Thread(r.Context(), ref)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, tree)
}

// Create godoc
// @Summary Оставить комментарий или ответ
// @Tags comments
// @Accept json
// @Produce json
// @Param input body models.CreateCommentRequest true "Комментарий"
// @Success 201 {object} models.Comment
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /api/comments [post]
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())
	var req models.CreateCommentRequest
	if err := decode(w, r, &req); err != nil {
		log.Warn("Невалидный запрос на комментарий", zap.Error(err))
		helpers.FromError(w, err)
		return
	}
	ref, err := models.NewContentRef(req.ArticleID, req.DebateID)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), models.NewComment{
		Ref:        ref,
		ParentID:   req.ParentID,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	})
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, c)
}

// Like godoc
// @Summary Лайк комментария (+1)
// @Tags comments
// @Produce json
// @Param id path string true "ID комментария"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} helpers.Response
// @Router /api/comments/{id}/like [patch]
func (h *CommentHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	if err := h.svc.IncrementLike(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Delete godoc
// @Summary Удалить комментарий (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Param id path string true "ID комментария"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} helpers.Response
// @Router /api/admin/comments/{id} [delete]
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// ListRecent godoc
// @Summary Последние комментарии для модерации (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} models.AdminComment
// @Router /api/admin/comments [get]
func (h *CommentHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListRecent(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, list)
}

type approvalRequest struct {
	IsApproved *bool `json:"isApproved" validate:"required"`
}

// SetApproval godoc
// @Summary Одобрить или скрыть комментарий (только admin)
// @Tags admin-comments
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "ID комментария"
// @Param input body approvalRequest true "Статус"
// @Success 200 {object} models.Comment
// @Failure 404 {object} helpers.Response
// @Router /api/admin/comments/{id}/approval [patch]
func (h *CommentHandler) SetApproval(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	var req approvalRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}
	c, err := h.svc.SetApproval(r.Context(), id, *req.IsApproved)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, c)
}
