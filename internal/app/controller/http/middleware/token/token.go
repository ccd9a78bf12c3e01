package token

import (
	"context"
	"net/http"

	"github.com/avGenie/go-order-processing/internal/app/entity"
	usecase "github.com/avGenie/go-order-processing/internal/app/usecase/converter"
	"go.uber.org/zap"
)

func TokenParserMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header[usecase.AuthHeader]
			userCtx := processAuthUserID(authHeader, secret)

			ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func processAuthUserID(authHeader []string, secret string) entity.UserIDCtx {
	if len(authHeader) == 0 {
		zap.L().Debug("authorization header is empty")

		return entity.CreateUserIDCtx(0, http.StatusUnauthorized)
	}

	userID, err := usecase.GetUserIDFromAuthHeader(authHeader[0], secret)
	if err != nil {
		zap.L().Error("error while parsing auth header", zap.Error(err))

		return entity.CreateUserIDCtx(0, http.StatusUnauthorized)
	}

	if !userID.Valid() {
		zap.L().Error("invalid user id in authorization header", zap.String("user_id", userID.String()))

		return entity.CreateUserIDCtx(0, http.StatusBadRequest)
	}

	return entity.CreateUserIDCtx(userID, http.StatusOK)
}
