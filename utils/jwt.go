package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const secretKey = "supersecret"

// GenerateToken signs a 2h token carrying the numeric user id and the
// opaque uid that owned records reference.
func GenerateToken(email string, userId int64, userUID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":   email,
		"userId":  userId,
		"userUID": userUID,
		"exp":     time.Now().Add(time.Hour * 2).Unix(),
	})

	return token.SignedString([]byte(secretKey))
}

// VerifyToken checks signature and expiry and returns userId and userUID.
func VerifyToken(token string) (int64, string, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return 0, "", errors.New("could not parse token")
	}

	if !parsedToken.Valid {
		return 0, "", errors.New("invalid token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}

	rawId, ok := claims["userId"].(float64)
	if !ok {
		return 0, "", errors.New("invalid token claims")
	}
	userUID, _ := claims["userUID"].(string)

	return int64(rawId), userUID, nil
}
