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
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on login with a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService handles accounts: registration, login, profiles
type UserService struct {
	Dynamo DynamoAPI
}

// RegisterUser creates an account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, name, email, password, role, clubID string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	if role == "" {
		role = models.RoleStudent
	}
	if role != models.RoleStudent && role != models.RoleClubAdmin && role != models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user already exists", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		UserID:       uuid.New().String(),
		Name:         name,
		EmailID:      email,
		PasswordHash: string(hash),
		Role:         role,
		ClubID:       clubID,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	if err := s.Dynamo.PutItem(ctx, models.UsersTable, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("✅ Registered user %s (%s)", user.EmailID, user.Role)
	return &user, nil
}

// AuthenticateUser verifies the email/password pair and returns the account.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetUser fetches one account by id.
func (s *UserService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	item, err := s.Dynamo.GetItem(ctx, models.UsersTable, userKey(userID))
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(item, &user); err != nil {
		return nil, fmt.Errorf("failed to process user: %w", err)
	}
	return &user, nil
}

// GetAllUsers lists every account. Super admin only, enforced upstream.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	items, err := s.Dynamo.ScanItems(ctx, models.UsersTable, "", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	var users []models.User
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, fmt.Errorf("failed to process data: %w", err)
	}
	return users, nil
}

// UpdateProfile changes the display fields of an account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, name, profilePic *string) (*models.User, error) {
	updateExpression := "SET"
	expressionValues := map[string]types.AttributeValue{}
	expressionNames := map[string]string{}

	if name != nil {
		updateExpression += " #name = :name"
		expressionValues[":name"] = &types.AttributeValueMemberS{Value: *name}
		expressionNames["#name"] = "name"
	}
	if profilePic != nil {
		if len(expressionValues) > 0 {
			updateExpression += ","
		}
		updateExpression += " profilePic = :profilePic"
		expressionValues[":profilePic"] = &types.AttributeValueMemberS{Value: *profilePic}
	}
	if len(expressionValues) == 0 {
		return s.GetUser(ctx, userID)
	}
	if len(expressionNames) == 0 {
		expressionNames = nil
	}

	attrs, err := s.Dynamo.UpdateItem(ctx, models.UsersTable, updateExpression, userKey(userID), expressionValues, expressionNames)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(attrs, &user); err != nil {
		return nil, fmt.Errorf("failed to process user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account. Super admin only, enforced upstream.
// Engagements the user created stay behind as dangling references.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Dynamo.DeleteItem(ctx, models.UsersTable, userKey(userID)); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.Printf("🗑️ Deleted user %s", userID)
	return nil
}

func (s *UserService) findByEmail(ctx context.Context, email string) (*models.User, error) {
	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.UsersTable, models.UserEmailIndex,
		"emailId = :email",
		map[string]types.AttributeValue{":email": &types.AttributeValueMemberS{Value: email}},
		nil, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("failed to process user: %w", err)
	}
	return &user, nil
}

func userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
}
