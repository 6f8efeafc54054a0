package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campuslink_server/middleware"
	"campuslink_server/services"
)

// AuthController handles registration, login, and logout
type AuthController struct {
	UserService *services.UserService
}

// RegisterHandler creates an account and issues the auth cookie
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name     string `json:"name"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"omitempty,oneof=student club_admin super_admin"`
		ClubID   string `json:"clubId,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid registration details")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := c.UserService.RegisterUser(ctx, request.Name, request.Email, request.Password, request.Role, request.ClubID)
	if err != nil {
		log.Printf("❌ Registration failed: %v", err)
		writeServiceError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.UserID, user.Role)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Registration failed")
		return
	}
	middleware.SetTokenCookie(w, token)

	writeJSON(w, http.StatusCreated, map[string]interface{}{"user": user, "token": token})
}

// LoginHandler verifies credentials and issues the auth cookie
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid login details")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := c.UserService.AuthenticateUser(ctx, request.Email, request.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	token, err := middleware.GenerateToken(user.UserID, user.Role)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Login failed")
		return
	}
	middleware.SetTokenCookie(w, token)

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user, "token": token})
}

// LogoutHandler clears the auth cookie
func (c *AuthController) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	middleware.ClearTokenCookie(w)
	writeMessage(w, http.StatusOK, "Logged out successfully")
}
