package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"campuslink_server/models"
	"campuslink_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ClubService handles club records, following, and the delete cascade
type ClubService struct {
	Dynamo DynamoAPI
}

// ClubUpdate carries the mutable club fields; nil means leave unchanged.
type ClubUpdate struct {
	Name        *string
	Description *string
	LogoURL     *string
}

// CreateClub registers a new club, pending approval. Club names are unique.
func (s *ClubService) CreateClub(ctx context.Context, name, description, logoURL string) (*models.Club, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}

	existing, err := s.Dynamo.QueryItemsWithIndex(ctx, models.ClubsTable, models.ClubNameIndex,
		"#name = :name",
		map[string]types.AttributeValue{":name": &types.AttributeValueMemberS{Value: name}},
		map[string]string{"#name": "name"}, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to check club name: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: club %q already exists", ErrInvalidInput, name)
	}

	club := models.Club{
		ClubID:      uuid.New().String(),
		Name:        name,
		Description: description,
		LogoURL:     logoURL,
		IsApproved:  false,
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.ClubsTable, club); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}

	log.Printf("✅ Created club %s (%s)", club.Name, club.ClubID)
	return &club, nil
}

// GetAllClubs returns every club, sorted by name.
func (s *ClubService) GetAllClubs(ctx context.Context) ([]models.Club, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.ClubsTable, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}

	var clubs []models.Club
	if err := attributevalue.UnmarshalListOfMaps(items, &clubs); err != nil {
		return nil, fmt.Errorf("failed to process data: %w", err)
	}

	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
	return clubs, nil
}

// GetClub fetches one club by id.
func (s *ClubService) GetClub(ctx context.Context, clubID string) (*models.Club, error) {
	item, err := s.Dynamo.GetItem(ctx, models.ClubsTable, clubKey(clubID))
	if err != nil {
		return nil, err
	}

	var club models.Club
	if err := attributevalue.UnmarshalMap(item, &club); err != nil {
		return nil, fmt.Errorf("failed to process club: %w", err)
	}
	return &club, nil
}

// UpdateClub applies the provided field changes and returns the new state.
func (s *ClubService) UpdateClub(ctx context.Context, clubID string, update ClubUpdate) (*models.Club, error) {
	updateExpression := "SET"
	expressionValues := map[string]types.AttributeValue{}
	expressionNames := map[string]string{}

	appendSet := func(attr, placeholder, value string) {
		if len(expressionValues) > 0 {
			updateExpression += ","
		}
		updateExpression += fmt.Sprintf(" #%s = :%s", placeholder, placeholder)
		expressionValues[":"+placeholder] = &types.AttributeValueMemberS{Value: value}
		expressionNames["#"+placeholder] = attr
	}

	if update.Name != nil {
		appendSet("name", "name", *update.Name)
	}
	if update.Description != nil {
		appendSet("description", "description", *update.Description)
	}
	if update.LogoURL != nil {
		appendSet("logoUrl", "logoUrl", *update.LogoURL)
	}
	if len(expressionValues) == 0 {
		return s.GetClub(ctx, clubID)
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.ClubsTable, updateExpression, clubKey(clubID), expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var club models.Club
	if err := attributevalue.UnmarshalMap(attrs, &club); err != nil {
		return nil, fmt.Errorf("failed to process club: %w", err)
	}
	return &club, nil
}

// ApproveClub flips the approval flag. Super admin only, enforced upstream.
func (s *ClubService) ApproveClub(ctx context.Context, clubID string) (*models.Club, error) {
	attrs, err := s.Dynamo.UpdateItem(ctx, models.ClubsTable,
		"SET isApproved = :approved",
		clubKey(clubID),
		map[string]types.AttributeValue{":approved": &types.AttributeValueMemberBOOL{Value: true}},
		nil)
	if err != nil {
		return nil, err
	}

	var club models.Club
	if err := attributevalue.UnmarshalMap(attrs, &club); err != nil {
		return nil, fmt.Errorf("failed to process club: %w", err)
	}
	log.Printf("✅ Approved club %s", clubID)
	return &club, nil
}

// DeleteClub removes a club and cascades over everything that references it:
// first the club's events, then its engagements, then the club id is removed
// from every follower's followingClubs set, and finally the club row itself.
//
// The steps are not transactional. A failure partway through leaves earlier
// deletions in place with no rollback; the caller sees the error and the
// club row survives for a retry.
func (s *ClubService) DeleteClub(ctx context.Context, clubID string) error {
	log.Printf("🗑️ Deleting club %s with cascade", clubID)

	if err := s.deleteClubEvents(ctx, clubID); err != nil {
		return err
	}
	if err := s.deleteClubEngagements(ctx, clubID); err != nil {
		return err
	}
	if err := s.removeClubFromFollowers(ctx, clubID); err != nil {
		return err
	}

	if err := s.Dynamo.DeleteItem(ctx, models.ClubsTable, clubKey(clubID)); err != nil {
		return fmt.Errorf("failed to delete club %s: %w", clubID, err)
	}

	log.Printf("✅ Club %s deleted", clubID)
	return nil
}

func (s *ClubService) deleteClubEvents(ctx context.Context, clubID string) error {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.EventsTable, models.EventCreatedByIndex,
		"createdBy = :club",
		map[string]types.AttributeValue{":club": &types.AttributeValueMemberS{Value: clubID}},
		nil, 500)
	if err != nil {
		return fmt.Errorf("failed to list club events: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{"eventId": item["eventId"]},
			},
		})
	}

	log.Printf("🗑️ Deleting %d events for club %s", len(writeRequests), clubID)
	return s.Dynamo.BatchWriteItems(ctx, models.EventsTable, writeRequests)
}

func (s *ClubService) deleteClubEngagements(ctx context.Context, clubID string) error {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.EngagementsTable, models.EngagementClubIndex,
		"clubId = :club",
		map[string]types.AttributeValue{":club": &types.AttributeValueMemberS{Value: clubID}},
		nil, 1000)
	if err != nil {
		return fmt.Errorf("failed to list club engagements: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	writeRequests := make([]types.WriteRequest, 0, len(items))
	for _, item := range items {
		writeRequests = append(writeRequests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{"PK": item["PK"], "SK": item["SK"]},
			},
		})
	}

	log.Printf("🗑️ Deleting %d engagements for club %s", len(writeRequests), clubID)
	return s.Dynamo.BatchWriteItems(ctx, models.EngagementsTable, writeRequests)
}

func (s *ClubService) removeClubFromFollowers(ctx context.Context, clubID string) error {
	items, err := s.Dynamo.ScanItems(ctx, models.UsersTable,
		"contains(followingClubs, :club)",
		map[string]types.AttributeValue{":club": &types.AttributeValueMemberS{Value: clubID}},
		nil)
	if err != nil {
		return fmt.Errorf("failed to list followers: %w", err)
	}

	for _, item := range items {
		userID := utils.ExtractString(item, "userId")
		if userID == "" {
			continue
		}
		_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
			"DELETE followingClubs :club",
			map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
			map[string]types.AttributeValue{":club": &types.AttributeValueMemberSS{Value: []string{clubID}}},
			nil)
		if err != nil {
			return fmt.Errorf("failed to remove club from follower %s: %w", userID, err)
		}
	}

	if len(items) > 0 {
		log.Printf("🗑️ Removed club %s from %d follower lists", clubID, len(items))
	}
	return nil
}

// FollowClub adds the club to the user's followingClubs set.
func (s *ClubService) FollowClub(ctx context.Context, userID, clubID string) error {
	if _, err := s.GetClub(ctx, clubID); err != nil {
		return err
	}

	_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"ADD followingClubs :club",
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		map[string]types.AttributeValue{":club": &types.AttributeValueMemberSS{Value: []string{clubID}}},
		nil)
	if err != nil {
		return fmt.Errorf("failed to follow club: %w", err)
	}
	return nil
}

// UnfollowClub removes the club from the user's followingClubs set.
func (s *ClubService) UnfollowClub(ctx context.Context, userID, clubID string) error {
	_, err := s.Dynamo.UpdateItem(ctx, models.UsersTable,
		"DELETE followingClubs :club",
		map[string]types.AttributeValue{"userId": &types.AttributeValueMemberS{Value: userID}},
		map[string]types.AttributeValue{":club": &types.AttributeValueMemberSS{Value: []string{clubID}}},
		nil)
	if err != nil {
		return fmt.Errorf("failed to unfollow club: %w", err)
	}
	return nil
}

func clubKey(clubID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"clubId": &types.AttributeValueMemberS{Value: clubID},
	}
}
