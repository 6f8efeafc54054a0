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

// ClubController handles club CRUD and moderation requests
type ClubController struct {
	ClubService *services.ClubService
}

// CreateClubHandler registers a new club, pending super admin approval
func (c *ClubController) CreateClubHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description,omitempty"`
		LogoURL     string `json:"logoUrl,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Club name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	club, err := c.ClubService.CreateClub(ctx, request.Name, request.Description, request.LogoURL)
	if err != nil {
		log.Printf("❌ Failed to create club: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, club)
}

// GetAllClubsHandler lists every club, sorted by name
func (c *ClubController) GetAllClubsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	clubs, err := c.ClubService.GetAllClubs(ctx)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clubs)
}

// GetClubHandler fetches one club by id
func (c *ClubController) GetClubHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	club, err := c.ClubService.GetClub(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}

// UpdateClubHandler changes a club's display fields
func (c *ClubController) UpdateClubHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		LogoURL     *string `json:"logoUrl,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	club, err := c.ClubService.UpdateClub(ctx, mux.Vars(r)["id"], services.ClubUpdate{
		Name:        request.Name,
		Description: request.Description,
		LogoURL:     request.LogoURL,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}

// ApproveClubHandler flips the approval flag. Super admin only.
func (c *ClubController) ApproveClubHandler(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	if claims.Role != models.RoleSuperAdmin {
		writeMessage(w, http.StatusForbidden, "Not authorized")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	club, err := c.ClubService.ApproveClub(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, club)
}

// DeleteClubHandler removes a club and cascades over its events,
// engagements, and follower references
func (c *ClubController) DeleteClubHandler(w http.ResponseWriter, r *http.Request) {
	clubID := mux.Vars(r)["id"]

	// The cascade touches several tables; give it more room than a read.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if err := c.ClubService.DeleteClub(ctx, clubID); err != nil {
		log.Printf("❌ Failed to delete club %s: %v", clubID, err)
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Club deleted")
}
