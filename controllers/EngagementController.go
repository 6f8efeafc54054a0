package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campuslink_server/middleware"
	"campuslink_server/services"
	"campuslink_server/socket"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gorilla/mux"
)

// EngagementController handles API requests for likes, dislikes, and comments
type EngagementController struct {
	EngagementService *services.EngagementService
	Socket            *socketio.Server // optional live feed
}

// SubmitReactionHandler records a like, dislike, or comment for the acting user
func (c *EngagementController) SubmitReactionHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var request struct {
		EventID     string `json:"eventId" validate:"required"`
		ClubID      string `json:"clubId" validate:"required"`
		Type        string `json:"type" validate:"required,oneof=like dislike comment"`
		CommentText string `json:"commentText,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Println("❌ Invalid request payload:", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid engagement type")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	engagement, err := c.EngagementService.SubmitReaction(ctx, request.EventID, claims.UserID, request.Type, request.ClubID, request.CommentText)
	if err != nil {
		log.Printf("❌ Failed to process reaction: %v", err)
		writeServiceError(w, err)
		return
	}

	if c.Socket != nil {
		c.Socket.BroadcastToRoom("/", socket.EventRoom(engagement.EventID), "engagementUpdate", engagement)
	}

	writeJSON(w, http.StatusOK, engagement)
}

// GetEventEngagementsHandler fetches all engagements for a specific event
func (c *EngagementController) GetEventEngagementsHandler(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["eventId"]
	if eventID == "" {
		writeMessage(w, http.StatusBadRequest, "Missing eventId parameter")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	engagements, err := c.EngagementService.GetEventEngagements(ctx, eventID)
	if err != nil {
		log.Printf("❌ Failed to fetch engagements for %s: %v", eventID, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, engagements)
}

// GetClubLikesHandler returns the like count per club
func (c *EngagementController) GetClubLikesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	counts, err := c.EngagementService.GetClubLikeCounts(ctx)
	if err != nil {
		log.Printf("❌ Failed to aggregate club likes: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, counts)
}
