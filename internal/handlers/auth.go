package handlers

import (
	"errors"
	"net/http"

	"imuhira/internal/logger"
	"imuhira/internal/models"
	"imuhira/internal/services"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Вход администратора
// @Tags admin-auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Логин и пароль"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} helpers.Response
// @Failure 401 {object} helpers.Response
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decode(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if errors.Is(err, services.ErrInvalidCredentials) {
		helpers.Error(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка входа", zap.Error(err))
		helpers.FromError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, tokens)
}
