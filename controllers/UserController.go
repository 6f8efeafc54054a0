package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campuslink_server/middleware"
	"campuslink_server/models"
	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// UserController handles profile and account administration requests
type UserController struct {
	UserService *services.UserService
	ClubService *services.ClubService
}

// UpdateProfileHandler changes the acting user's display fields
func (c *UserController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request struct {
		Name       *string `json:"name,omitempty"`
		ProfilePic *string `json:"profilePic,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := c.UserService.UpdateProfile(ctx, claims.UserID, request.Name, request.ProfilePic)
	if err != nil {
		log.Printf("❌ Failed to update profile for %s: %v", claims.UserID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// FollowClubHandler adds a club to the acting user's following list
func (c *UserController) FollowClubHandler(w http.ResponseWriter, r *http.Request) {
	c.changeFollowing(w, r, true)
}

// UnfollowClubHandler removes a club from the acting user's following list
func (c *UserController) UnfollowClubHandler(w http.ResponseWriter, r *http.Request) {
	c.changeFollowing(w, r, false)
}

func (c *UserController) changeFollowing(w http.ResponseWriter, r *http.Request, follow bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	clubID := mux.Vars(r)["clubId"]
	if clubID == "" {
		writeMessage(w, http.StatusBadRequest, "Missing clubId parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var err error
	if follow {
		err = c.ClubService.FollowClub(ctx, claims.UserID, clubID)
	} else {
		err = c.ClubService.UnfollowClub(ctx, claims.UserID, clubID)
	}
	if err != nil {
		log.Printf("❌ Failed to change following for %s: %v", claims.UserID, err)
		writeServiceError(w, err)
		return
	}

	if follow {
		writeMessage(w, http.StatusOK, "Club followed")
	} else {
		writeMessage(w, http.StatusOK, "Club unfollowed")
	}
}

// GetUserHandler fetches one account by id
func (c *UserController) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := c.UserService.GetUser(ctx, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetAllUsersHandler lists every account. Super admin only.
func (c *UserController) GetAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	if claims.Role != models.RoleSuperAdmin {
		writeMessage(w, http.StatusForbidden, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := c.UserService.GetAllUsers(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// DeleteUserHandler removes an account. Super admin only.
func (c *UserController) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	if claims.Role != models.RoleSuperAdmin {
		writeMessage(w, http.StatusForbidden, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.UserService.DeleteUser(ctx, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "User deleted")
}
