// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
	helper "quizku_backend/internals/helpers"
)

// AuthMiddleware verifies the bearer token and stores the resolved user id in
// Locals("user_id"). Identity only ever comes from the verified token, never
// from a client-supplied field. Any structural, cryptographic or expiry
// failure is a 401 — never partial identity.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Extract Authorization: Bearer <token>
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - missing bearer token")
		}

		// 2) Verify signature + registered claims (exp included)
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or expired token")
		}

		// 3) Resolve user id from the subject claim
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - invalid or missing user ID")
		}
		c.Locals("user_id", userID)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

// sub arrives as a JSON number (float64) after parsing; a string sub is
// accepted too for tokens minted by older builds.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	switch v := claims["sub"].(type) {
	case float64:
		if v < 1 {
			return 0, errors.New("subject claim out of range")
		}
		return uint(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return 0, errors.New("subject claim is not a valid id")
		}
		return uint(id), nil
	}
	return 0, errors.New("missing subject claim")
}
