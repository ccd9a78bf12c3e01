package httputils

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/entity"
)

const (
	RequestTimeout = 3 * time.Second
)

const (
	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "auth credentials are invalid"
)

// GetUserIDFromContext writes the error response itself.
func GetUserIDFromContext(w http.ResponseWriter, r *http.Request) (entity.UserID, error) {
	userIDCtx, ok := entity.UserIDStatusFromContext(r)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.UserID(0), fmt.Errorf("user id couldn't obtain from context")
	}

	if userIDCtx.StatusCode == http.StatusBadRequest {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.UserID(0), fmt.Errorf("failed auth credentials")
	}

	if userIDCtx.StatusCode == http.StatusUnauthorized {
		http.Error(w, ErrTokenExpired, http.StatusUnauthorized)
		return entity.UserID(0), errors.New(ErrTokenExpired)
	}

	if userIDCtx.StatusCode == http.StatusOK && !userIDCtx.UserID.Valid() {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.UserID(0), fmt.Errorf("invalid user id with status ok")
	}

	return userIDCtx.UserID, nil
}
