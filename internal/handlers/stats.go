package handlers

import (
	"net/http"

	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"
)

type StatsHandler struct {
	svc services.StatsService
}

func NewStatsHandler(svc services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Get godoc
// @Summary Сводка для админ-панели
// @Tags admin-stats
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.Stats
// @Router /api/admin/stats [get]
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context())
	if err != nil {
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, st)
}
