package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	resultModel "quizku_backend/internals/features/quiz_results/model"
	quizModel "quizku_backend/internals/features/quizzes/model"
	userModel "quizku_backend/internals/features/users/model"
	routes "quizku_backend/internals/route"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

type authBody struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	UserName    string `json:"username"`
	AccessToken string `json:"access_token"`
}

func register(t *testing.T, app *fiber.App, email, username string) authBody {
	t.Helper()
	code, env := doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{
		"email":    email,
		"username": username,
	})
	require.Equal(t, http.StatusCreated, code)
	var out authBody
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestRegisterReturnsTokenForCreatedUser(t *testing.T) {
	app, _ := newTestApp(t)

	out := register(t, app, "a@x.com", "a")
	require.NotZero(t, out.ID)
	require.Equal(t, "a@x.com", out.Email)
	require.Equal(t, "a", out.UserName)
	require.NotEmpty(t, out.AccessToken)

	// the token must resolve to the user just created
	code, env := doJSON(t, app, http.MethodGet, "/users/me", out.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)
	var me authBody
	require.NoError(t, json.Unmarshal(env.Data, &me))
	require.Equal(t, out.ID, me.ID)
}

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	app, db := newTestApp(t)

	register(t, app, "a@x.com", "a")
	code, _ := doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{
		"email":    "a@x.com",
		"username": "someone-else",
	})
	require.Equal(t, http.StatusBadRequest, code)

	var count int64
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("email = ?", "a@x.com").Count(&count).Error)
	require.EqualValues(t, 1, count, "no new row may be created on conflict")
}

func TestRegisterDuplicateUsernameIsConflict(t *testing.T) {
	app, _ := newTestApp(t)

	register(t, app, "a@x.com", "a")
	code, _ := doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{
		"email":    "other@x.com",
		"username": "a",
	})
	require.Equal(t, http.StatusBadRequest, code)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodPost, "/users", "", fiber.Map{
		"email":    "not-an-email",
		"username": "a",
	})
	require.Equal(t, http.StatusBadRequest, code)
}

func TestLoginByEmail(t *testing.T) {
	app, _ := newTestApp(t)

	created := register(t, app, "a@x.com", "a")

	code, env := doJSON(t, app, http.MethodPost, "/token", "", fiber.Map{"email": "a@x.com"})
	require.Equal(t, http.StatusOK, code)
	var out authBody
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, created.ID, out.ID)
	require.NotEmpty(t, out.AccessToken)

	code, _ = doJSON(t, app, http.MethodPost, "/token", "", fiber.Map{"email": "nobody@x.com"})
	require.Equal(t, http.StatusNotFound, code)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	app, _ := newTestApp(t)

	code, _ := doJSON(t, app, http.MethodGet, "/users/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, _ = doJSON(t, app, http.MethodGet, "/users/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	// structurally valid but expired
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	code, _ = doJSON(t, app, http.MethodGet, "/users/me", expired, nil)
	require.Equal(t, http.StatusUnauthorized, code)

	// valid shape, wrong signature
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	code, _ = doJSON(t, app, http.MethodGet, "/users/me", forged, nil)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestDeleteMeCascadesOwnResultsOnly(t *testing.T) {
	app, db := newTestApp(t)

	a := register(t, app, "a@x.com", "a")
	b := register(t, app, "b@x.com", "b")

	quiz := quizModel.QuizModel{Name: "Go basics", Category: "go"}
	require.NoError(t, db.Create(&quiz).Error)

	for _, u := range []authBody{a, b} {
		code, _ := doJSON(t, app, http.MethodPost, "/quiz-results", u.AccessToken, fiber.Map{
			"quiz_id":         quiz.ID,
			"score":           80,
			"correct_answers": 4,
			"total_questions": 5,
		})
		require.Equal(t, http.StatusCreated, code)
	}

	code, _ := doJSON(t, app, http.MethodDelete, "/users/me", a.AccessToken, nil)
	require.Equal(t, http.StatusOK, code)

	var aResults, bResults int64
	require.NoError(t, db.Model(&resultModel.QuizResultModel{}).Where("user_id = ?", a.ID).Count(&aResults).Error)
	require.NoError(t, db.Model(&resultModel.QuizResultModel{}).Where("user_id = ?", b.ID).Count(&bResults).Error)
	require.EqualValues(t, 0, aResults, "deleted user's results must be gone")
	require.EqualValues(t, 1, bResults, "other users' results must survive")

	// the token is still structurally valid but no longer resolves to a user
	code, _ = doJSON(t, app, http.MethodGet, "/users/me", a.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, code)
}
