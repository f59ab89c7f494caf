package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	model "quizku_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every session on the same in-memory DB
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestIssueTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newTestDB(t)

	user := model.UserModel{Email: "a@x.com", UserName: "alice"}
	require.NoError(t, db.Create(&user).Error)

	signed, err := IssueToken(db, &user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	sub, ok := claims["sub"].(float64)
	require.True(t, ok, "sub should be a numeric claim")
	require.Equal(t, user.ID, uint(sub))
	require.Equal(t, user.Email, claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	wantExp := time.Now().UTC().AddDate(1, 0, 0)
	require.InDelta(t, wantExp.Unix(), int64(exp), 120, "expiry should be one year out")
}

func TestIssueTokenUpdatesLastLogin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := newTestDB(t)

	user := model.UserModel{Email: "b@x.com", UserName: "bob"}
	require.NoError(t, db.Create(&user).Error)
	require.Nil(t, user.LastLoginAt)

	_, err := IssueToken(db, &user)
	require.NoError(t, err)
	require.NotNil(t, user.LastLoginAt)

	var stored model.UserModel
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotNil(t, stored.LastLoginAt)
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	configs.JWTSecret = ""
	db := newTestDB(t)

	user := model.UserModel{Email: "c@x.com", UserName: "carol"}
	require.NoError(t, db.Create(&user).Error)

	_, err := IssueToken(db, &user)
	require.Error(t, err)
}
