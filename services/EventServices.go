package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"campuslink_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// EventService handles club event postings
type EventService struct {
	Dynamo DynamoAPI
}

// EventInput carries the caller-supplied fields for a new event.
type EventInput struct {
	Title       string
	Description string
	Type        string
	Tags        []string
	MediaURL    string
	EventDate   string
	CreatedBy   string
}

// EventUpdate carries the mutable event fields; nil means leave unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	Type        *string
	Tags        []string
	MediaURL    *string
	EventDate   *string
}

func validateEventFields(eventType string, tags []string) error {
	if !models.IsValidEventType(eventType) {
		return fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, eventType)
	}
	for _, tag := range tags {
		if !models.IsValidEventTag(tag) {
			return fmt.Errorf("%w: unknown tag %q", ErrInvalidInput, tag)
		}
	}
	return nil
}

// CreateEvent stores a new event for a club.
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if input.CreatedBy == "" {
		return nil, fmt.Errorf("%w: createdBy club is required", ErrInvalidInput)
	}
	if err := validateEventFields(input.Type, input.Tags); err != nil {
		return nil, err
	}

	event := models.Event{
		EventID:     uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Tags:        input.Tags,
		MediaURL:    input.MediaURL,
		EventDate:   input.EventDate,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.EventsTable, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	log.Printf("✅ Created event %s for club %s", event.EventID, event.CreatedBy)
	return &event, nil
}

// GetAllEvents lists events, optionally filtered by club and/or type, with
// the owning club's name resolved.
func (s *EventService) GetAllEvents(ctx context.Context, clubID, eventType string) ([]models.Event, error) {
	var items []map[string]types.AttributeValue
	var err error

	if clubID != "" {
		items, err = s.Dynamo.QueryItemsWithIndex(ctx, models.EventsTable, models.EventCreatedByIndex,
			"createdBy = :club",
			map[string]types.AttributeValue{":club": &types.AttributeValueMemberS{Value: clubID}},
			nil, 500)
	} else {
		items, err = s.Dynamo.ScanItems(ctx, models.EventsTable, "", nil, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var events []models.Event
	if err := attributevalue.UnmarshalListOfMaps(items, &events); err != nil {
		return nil, fmt.Errorf("failed to process data: %w", err)
	}

	if eventType != "" {
		filtered := events[:0]
		for _, event := range events {
			if event.Type == eventType {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	s.resolveClubNames(ctx, events)
	return events, nil
}

// GetEvent fetches one event by id.
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	item, err := s.Dynamo.GetItem(ctx, models.EventsTable, eventKey(eventID))
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(item, &event); err != nil {
		return nil, fmt.Errorf("failed to process event: %w", err)
	}

	events := []models.Event{event}
	s.resolveClubNames(ctx, events)
	return &events[0], nil
}

// UpdateEvent applies the provided field changes and stamps updatedAt.
func (s *EventService) UpdateEvent(ctx context.Context, eventID string, update EventUpdate) (*models.Event, error) {
	if update.Type != nil || update.Tags != nil {
		eventType := ""
		if update.Type != nil {
			eventType = *update.Type
		} else {
			current, err := s.GetEvent(ctx, eventID)
			if err != nil {
				return nil, err
			}
			eventType = current.Type
		}
		if err := validateEventFields(eventType, update.Tags); err != nil {
			return nil, err
		}
	}

	updateExpression := "SET updatedAt = :updatedAt"
	expressionValues := map[string]types.AttributeValue{
		":updatedAt": &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{}

	if update.Title != nil {
		updateExpression += ", title = :title"
		expressionValues[":title"] = &types.AttributeValueMemberS{Value: *update.Title}
	}
	if update.Description != nil {
		updateExpression += ", description = :description"
		expressionValues[":description"] = &types.AttributeValueMemberS{Value: *update.Description}
	}
	if update.Type != nil {
		updateExpression += ", #type = :type"
		expressionValues[":type"] = &types.AttributeValueMemberS{Value: *update.Type}
		expressionNames["#type"] = "type"
	}
	if update.Tags != nil {
		tagList := make([]types.AttributeValue, 0, len(update.Tags))
		for _, tag := range update.Tags {
			tagList = append(tagList, &types.AttributeValueMemberS{Value: tag})
		}
		updateExpression += ", tags = :tags"
		expressionValues[":tags"] = &types.AttributeValueMemberL{Value: tagList}
	}
	if update.MediaURL != nil {
		updateExpression += ", mediaUrl = :mediaUrl"
		expressionValues[":mediaUrl"] = &types.AttributeValueMemberS{Value: *update.MediaURL}
	}
	if update.EventDate != nil {
		updateExpression += ", eventDate = :eventDate"
		expressionValues[":eventDate"] = &types.AttributeValueMemberS{Value: *update.EventDate}
	}

	if len(expressionNames) == 0 {
		expressionNames = nil
	}
	attrs, err := s.Dynamo.UpdateItem(ctx, models.EventsTable, updateExpression, eventKey(eventID), expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var event models.Event
	if err := attributevalue.UnmarshalMap(attrs, &event); err != nil {
		return nil, fmt.Errorf("failed to process event: %w", err)
	}
	return &event, nil
}

// DeleteEvent removes one event. Its engagements are left in place and
// cleaned up only when the owning club is deleted.
func (s *EventService) DeleteEvent(ctx context.Context, eventID string) error {
	if err := s.Dynamo.DeleteItem(ctx, models.EventsTable, eventKey(eventID)); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	log.Printf("🗑️ Deleted event %s", eventID)
	return nil
}

func (s *EventService) resolveClubNames(ctx context.Context, events []models.Event) {
	clubNames := map[string]string{}
	for i := range events {
		name, ok := clubNames[events[i].CreatedBy]
		if !ok {
			item, err := s.Dynamo.GetItem(ctx, models.ClubsTable, map[string]types.AttributeValue{
				"clubId": &types.AttributeValueMemberS{Value: events[i].CreatedBy},
			})
			if err != nil {
				if !errors.Is(err, ErrItemNotFound) {
					log.Printf("⚠️ Error resolving club %s: %v", events[i].CreatedBy, err)
				}
				clubNames[events[i].CreatedBy] = ""
				continue
			}
			var club models.Club
			if err := attributevalue.UnmarshalMap(item, &club); err == nil {
				name = club.Name
			}
			clubNames[events[i].CreatedBy] = name
		}
		events[i].ClubName = name
	}
}

func eventKey(eventID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: eventID},
	}
}
