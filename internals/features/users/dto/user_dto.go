// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	model "quizku_backend/internals/features/users/model"
)

/* ==============================
   CREATE (POST /users)
============================== */

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	UserName string `json:"username" validate:"required,min=3,max=50"`
}

/* ==============================
   LOGIN (POST /token)
============================== */

type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

/* ==============================
   Responses
============================== */

type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	UserName    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

type AuthResponse struct {
	UserResponse
	AccessToken string `json:"access_token"`
}

func NewUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:          m.ID,
		Email:       m.Email,
		UserName:    m.UserName,
		CreatedAt:   m.CreatedAt,
		LastLoginAt: m.LastLoginAt,
	}
}

func NewAuthResponse(m *model.UserModel, token string) AuthResponse {
	return AuthResponse{
		UserResponse: NewUserResponse(m),
		AccessToken:  token,
	}
}
