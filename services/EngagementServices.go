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
)

// ErrInvalidInput marks client-side validation failures. Controllers map it
// to a 400 before anything is written to the store.
var ErrInvalidInput = errors.New("invalid input")

// EngagementService handles reactions (like, dislike, comment) on events
type EngagementService struct {
	Dynamo DynamoAPI
}

// SubmitReaction records a user's reaction to an event.
//
// A like deletes any stored dislike for the same (event, user) and vice
// versa, so at most one of the pair exists at a time. The same-type row is
// then upserted: the row key is (eventId, userId, type), so a repeated
// reaction overwrites in place and a user's repeated comments on one event
// collapse into a single row. createdAt is written once on first insert and
// survives later overwrites.
//
// The two writes are independent; two concurrent submissions for the same
// (event, user) can interleave between the delete and the upsert. The
// referenced event and club are not verified to exist.
func (s *EngagementService) SubmitReaction(ctx context.Context, eventID, userID, engagementType, clubID, commentText string) (*models.Engagement, error) {
	if !models.IsValidEngagementType(engagementType) {
		return nil, fmt.Errorf("%w: unknown engagement type %q", ErrInvalidInput, engagementType)
	}
	if engagementType == models.EngagementTypeComment && commentText == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrInvalidInput)
	}

	log.Printf("🔄 Processing %s from user %s on event %s", engagementType, userID, eventID)

	// Delete the opposite reaction if one exists. Deleting a missing key
	// is a no-op, so no existence check is needed first.
	if engagementType == models.EngagementTypeLike || engagementType == models.EngagementTypeDislike {
		opposite := models.EngagementTypeDislike
		if engagementType == models.EngagementTypeDislike {
			opposite = models.EngagementTypeLike
		}
		oppositeKey := map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: models.EngagementPK(eventID)},
			"SK": &types.AttributeValueMemberS{Value: models.EngagementSK(userID, opposite)},
		}
		if err := s.Dynamo.DeleteItem(ctx, models.EngagementsTable, oppositeKey); err != nil {
			log.Printf("❌ Error removing opposite reaction: %v", err)
			return nil, fmt.Errorf("failed to remove opposite reaction: %w", err)
		}
	}

	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.EngagementPK(eventID)},
		"SK": &types.AttributeValueMemberS{Value: models.EngagementSK(userID, engagementType)},
	}

	updateExpression := "SET eventId = :eventId, userId = :userId, clubId = :clubId, #type = :type, createdAt = if_not_exists(createdAt, :now)"
	expressionValues := map[string]types.AttributeValue{
		":eventId": &types.AttributeValueMemberS{Value: eventID},
		":userId":  &types.AttributeValueMemberS{Value: userID},
		":clubId":  &types.AttributeValueMemberS{Value: clubID},
		":type":    &types.AttributeValueMemberS{Value: engagementType},
		":now":     &types.AttributeValueMemberS{Value: time.Now().Format(time.RFC3339)},
	}
	expressionNames := map[string]string{"#type": "type"}

	if engagementType == models.EngagementTypeComment {
		updateExpression += ", commentText = :commentText"
		expressionValues[":commentText"] = &types.AttributeValueMemberS{Value: commentText}
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.EngagementsTable, updateExpression, key, expressionValues, expressionNames)
	if err != nil {
		log.Printf("❌ Error upserting engagement: %v", err)
		return nil, fmt.Errorf("failed to store engagement: %w", err)
	}

	var engagement models.Engagement
	if err := attributevalue.UnmarshalMap(attrs, &engagement); err != nil {
		return nil, fmt.Errorf("failed to process stored engagement: %w", err)
	}

	log.Printf("✅ Stored %s engagement for event %s", engagementType, eventID)
	return &engagement, nil
}

// GetEventEngagements fetches all engagements for an event with each acting
// user's display identity resolved.
func (s *EngagementService) GetEventEngagements(ctx context.Context, eventID string) ([]models.EngagementWithUser, error) {
	log.Printf("🔍 Fetching engagements for event: %s", eventID)

	keyCondition := "PK = :event"
	expressionValues := map[string]types.AttributeValue{
		":event": &types.AttributeValueMemberS{Value: models.EngagementPK(eventID)},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.EngagementsTable, keyCondition, expressionValues, nil, 200)
	if err != nil {
		log.Printf("❌ Error querying engagements: %v", err)
		return nil, fmt.Errorf("failed to fetch engagements: %w", err)
	}

	var engagements []models.Engagement
	if err := attributevalue.UnmarshalListOfMaps(items, &engagements); err != nil {
		log.Printf("❌ Error unmarshaling engagements: %v", err)
		return nil, fmt.Errorf("failed to process data: %w", err)
	}

	// Resolve display identities once per distinct user. A missing user is
	// a dangling reference left by a deleted account; the engagement is
	// still returned, just without a name.
	userCache := map[string]*models.User{}
	resolved := make([]models.EngagementWithUser, 0, len(engagements))
	for _, engagement := range engagements {
		user, ok := userCache[engagement.UserID]
		if !ok {
			user = s.lookupUser(ctx, engagement.UserID)
			userCache[engagement.UserID] = user
		}
		row := models.EngagementWithUser{Engagement: engagement}
		if user != nil {
			row.UserName = user.Name
			row.ProfilePic = user.ProfilePic
		}
		resolved = append(resolved, row)
	}

	log.Printf("✅ Found %d engagements for event %s", len(resolved), eventID)
	return resolved, nil
}

func (s *EngagementService) lookupUser(ctx context.Context, userID string) *models.User {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, key)
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			log.Printf("⚠️ Error resolving user %s: %v", userID, err)
		}
		return nil
	}
	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil
	}
	return &user
}

// GetClubLikeCounts groups all like engagements by club and counts them.
// One row per distinct club; output order is unspecified.
func (s *EngagementService) GetClubLikeCounts(ctx context.Context) ([]models.ClubLikeCount, error) {
	log.Println("🔍 Aggregating likes per club")

	filterExpression := "#type = :like"
	expressionValues := map[string]types.AttributeValue{
		":like": &types.AttributeValueMemberS{Value: models.EngagementTypeLike},
	}
	expressionNames := map[string]string{"#type": "type"}

	items, err := s.Dynamo.ScanItems(ctx, models.EngagementsTable, filterExpression, expressionValues, expressionNames)
	if err != nil {
		log.Printf("❌ Error scanning engagements: %v", err)
		return nil, fmt.Errorf("failed to aggregate likes: %w", err)
	}

	var likes []models.Engagement
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to process data: %w", err)
	}

	counts := map[string]int{}
	for _, like := range likes {
		counts[like.ClubID]++
	}

	result := make([]models.ClubLikeCount, 0, len(counts))
	for clubID, count := range counts {
		result = append(result, models.ClubLikeCount{ClubID: clubID, LikeCount: count})
	}

	log.Printf("✅ Aggregated likes across %d clubs", len(result))
	return result, nil
}
