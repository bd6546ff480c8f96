package dto

import "github.com/hirehunt/hirehunt/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Name      string      `json:"name" binding:"required,max=255" example:"Asha Rao"`
	Email     string      `json:"email" binding:"required,email,max=255" example:"asha@example.com"`
	Password  string      `json:"password" binding:"required" example:"password123"`
	Role      models.Role `json:"role" binding:"omitempty,oneof=seeker employee admin" example:"seeker"`
	ResumeURL string      `json:"resumeUrl" binding:"omitempty,url"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255" example:"seeker@test.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}
