package handlers

import (
	"net/http"

	"imuhira/internal/models"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"
)

type SubscriberHandler struct {
	svc services.SubscriberService
}

func NewSubscriberHandler(svc services.SubscriberService) *SubscriberHandler {
	return &SubscriberHandler{svc: svc}
}

// Subscribe godoc
// @Summary Подписка на рассылку
// @Description 201 — новая подписка, 200 — адрес уже подписан.
// @Tags subscribers
// @Accept json
// @Produce json
// @Param input body models.SubscribeRequest true "Email"
// @Success 201 {object} map[string]string
// @Success 200 {object} map[string]string
// @Failure 400 {object} helpers.Response
// @Router /api/subscribe [post]
func (h *SubscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}
	created, err := h.svc.Subscribe(r.Context(), req.Email)
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	if !created {
		helpers.JSON(w, http.StatusOK, map[string]string{"message": "already subscribed"})
		return
	}
	helpers.JSON(w, http.StatusCreated, map[string]string{"message": "subscribed"})
}
