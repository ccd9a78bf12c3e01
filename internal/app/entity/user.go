package entity

import (
	"net/http"
	"strconv"
)

type UserID int64

func (u UserID) String() string {
	return strconv.FormatInt(int64(u), 10)
}

func (u UserID) Valid() bool {
	return u > 0
}

type UserIDCtxKey struct{}

type UserIDCtx struct {
	UserID     UserID
	StatusCode int
}

func CreateUserIDCtx(userID UserID, code int) UserIDCtx {
	return UserIDCtx{
		UserID:     userID,
		StatusCode: code,
	}
}

func UserIDStatusFromContext(r *http.Request) (UserIDCtx, bool) {
	userIDCtx, ok := r.Context().Value(UserIDCtxKey{}).(UserIDCtx)

	return userIDCtx, ok
}
