package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"campuslink_server/services"

	"github.com/gorilla/mux"
)

// EventController handles event CRUD requests
type EventController struct {
	EventService *services.EventService
}

// CreateEventHandler stores a new event posting
func (c *EventController) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title       string   `json:"title" validate:"required"`
		Description string   `json:"description,omitempty"`
		Type        string   `json:"type" validate:"required,oneof=announcement event podcast video"`
		Tags        []string `json:"tags,omitempty"`
		MediaURL    string   `json:"mediaUrl,omitempty"`
		EventDate   string   `json:"eventDate,omitempty"`
		CreatedBy   string   `json:"createdBy" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Missing or invalid event fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	event, err := c.EventService.CreateEvent(ctx, services.EventInput{
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Tags:        request.Tags,
		MediaURL:    request.MediaURL,
		EventDate:   request.EventDate,
		CreatedBy:   request.CreatedBy,
	})
	if err != nil {
		log.Printf("❌ Failed to create event: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// GetAllEventsHandler lists events, optionally filtered by clubId and/or type
func (c *EventController) GetAllEventsHandler(w http.ResponseWriter, r *http.Request) {
	clubID := r.URL.Query().Get("clubId")
	eventType := r.URL.Query().Get("type")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	events, err := c.EventService.GetAllEvents(ctx, clubID, eventType)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, events)
}

// GetEventHandler fetches one event by id
func (c *EventController) GetEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	event, err := c.EventService.GetEvent(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// UpdateEventHandler changes an event's fields
func (c *EventController) UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Title       *string  `json:"title,omitempty"`
		Description *string  `json:"description,omitempty"`
		Type        *string  `json:"type,omitempty" validate:"omitempty,oneof=announcement event podcast video"`
		Tags        []string `json:"tags,omitempty"`
		MediaURL    *string  `json:"mediaUrl,omitempty"`
		EventDate   *string  `json:"eventDate,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(request); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid event fields")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	event, err := c.EventService.UpdateEvent(ctx, mux.Vars(r)["id"], services.EventUpdate{
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Tags:        request.Tags,
		MediaURL:    request.MediaURL,
		EventDate:   request.EventDate,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// DeleteEventHandler removes one event
func (c *EventController) DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := c.EventService.DeleteEvent(ctx, mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Event deleted")
}
