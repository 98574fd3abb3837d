package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"imuhira/internal/logger"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

// AdminLogsHandler — просмотр JSON-логов из папки lumberjack.
type AdminLogsHandler struct {
	LogDir string
}

func NewAdminLogsHandler(logDir string) *AdminLogsHandler {
	return &AdminLogsHandler{LogDir: logDir}
}

// ListDays
// @Summary      Доступные дни логов
// @Description  Возвращает список дат (YYYY-MM-DD), за которые в логах есть записи.
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} map[string][]string "days"
// @Failure      401 {object} helpers.Response "unauthorized"
// @Router       /api/admin/logs/days [get]
func (h *AdminLogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := logger.Days(h.LogDir)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Не удалось прочитать папку логов", zap.String("dir", h.LogDir), zap.Error(err))
		days = []string{}
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"days": days})
}

// GetLogs
// @Summary      Логи за день
// @Description  Возвращает JSON-строки логов за день с фильтрами по уровню, часу и подстроке.
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Param        day     query  string true  "Дата (YYYY-MM-DD)"
// @Param        level   query  string false "CSV уровней: debug,info,warn,error"
// @Param        hour    query  int    false "Час (0-23)"
// @Param        q       query  string false "Поиск по подстроке"
// @Param        limit   query  int    false "Лимит (по умолч. 200, макс. 1000)"
// @Param        cursor  query  int    false "Курсор из предыдущего ответа"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} helpers.Response "bad day"
// @Failure      404 {object} helpers.Response "day not found"
// @Router       /api/admin/logs [get]
func (h *AdminLogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := q.Get("day")
	if !logger.ValidDay(day) {
		helpers.Error(w, http.StatusBadRequest, "bad day")
		return
	}

	f := logger.Filter{
		Day:    day,
		Levels: levelSet(q.Get("level")),
		Query:  q.Get("q"),
		Limit:  clampAtoi(q.Get("limit"), 200, 1, 1000),
		Cursor: clampAtoi(q.Get("cursor"), 0, 0, 10_000_000),
	}
	if hv, err := strconv.Atoi(q.Get("hour")); err == nil && hv >= 0 && hv <= 23 {
		f.Hour = &hv
	}

	items, next, err := logger.Read(h.LogDir, f)
	if errors.Is(err, logger.ErrNoLogs) {
		helpers.Error(w, http.StatusNotFound, "day not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Не удалось прочитать логи", zap.String("day", day), zap.Error(err))
		helpers.Error(w, http.StatusNotFound, "day not found")
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"day":        day,
		"items":      items,
		"nextCursor": next,
	})
}

func levelSet(csv string) map[string]bool {
	if csv == "" {
		return nil
	}
	m := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			m[p] = true
		}
	}
	return m
}
