package middleware

import (
	"net/http"
	"strings"

	"imuhira/internal/logger"
	"imuhira/internal/reqctx"
	"imuhira/internal/utils"
	"imuhira/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth проверяет Bearer access-токен и кладёт роль и subject в контекст.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				helpers.Error(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := utils.ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := reqctx.WithRole(r.Context(), claims.Role)
			ctx = reqctx.WithSubject(ctx, claims.Subject)
			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("sub", claims.Subject))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
