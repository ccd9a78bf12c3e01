package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/entity"
	usecase "github.com/avGenie/go-order-processing/internal/app/usecase/errors"
	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenExpiration = 3 * time.Hour
)

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"user_id"`
}

func BuildJWTString(userID entity.UserID, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenExpiration)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return tokenString, nil
}

func GetUserID(tokenString, secret string) (entity.UserID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return entity.UserID(0), usecase.ErrTokenExpired
		}

		return entity.UserID(0), fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, err)
	}

	if !token.Valid {
		return entity.UserID(0), usecase.ErrTokenNotValid
	}

	return claims.UserID, nil
}
