// internals/features/users/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	model "quizku_backend/internals/features/users/model"
)

// IssueToken mints an HS256 access token carrying the user's id and email,
// expiring exactly one year after issuance. Issuance doubles as a login, so
// the user's last_login_at is bumped as part of the same call.
func IssueToken(db *gorm.DB, user *model.UserModel) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("JWT secret is not configured")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.AddDate(1, 0, 0).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	loginAt := now
	if err := db.Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Update("last_login_at", loginAt).Error; err != nil {
		return "", err
	}
	user.LastLoginAt = &loginAt

	return signed, nil
}
