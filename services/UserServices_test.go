package services

import (
	"context"
	"errors"
	"testing"

	"campuslink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndAuthenticateUser(t *testing.T) {
	service := &UserService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	user, err := service.RegisterUser(ctx, "Priya", "priya@campus.test", "hunter22", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	authed, err := service.AuthenticateUser(ctx, "priya@campus.test", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, authed.UserID)

	_, err = service.AuthenticateUser(ctx, "priya@campus.test", "wrong")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	_, err = service.AuthenticateUser(ctx, "nobody@campus.test", "hunter22")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestRegisterUserValidation(t *testing.T) {
	service := &UserService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	_, err := service.RegisterUser(ctx, "No Email", "", "pass123", "", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = service.RegisterUser(ctx, "Bad Role", "bad@campus.test", "pass123", "president", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = service.RegisterUser(ctx, "First", "dup@campus.test", "pass123", "", "")
	require.NoError(t, err)
	_, err = service.RegisterUser(ctx, "Second", "dup@campus.test", "pass123", "", "")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestUpdateProfile(t *testing.T) {
	fake := newFakeDynamo()
	service := &UserService{Dynamo: fake}
	ctx := context.Background()

	user, err := service.RegisterUser(ctx, "Old Name", "rename@campus.test", "pass123", "", "")
	require.NoError(t, err)

	newName := "New Name"
	pic := "https://cdn.campus.test/pic.png"
	updated, err := service.UpdateProfile(ctx, user.UserID, &newName, &pic)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, pic, updated.ProfilePic)

	// No fields set: current state comes back unchanged.
	same, err := service.UpdateProfile(ctx, user.UserID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "New Name", same.Name)
}

func TestDeleteUser(t *testing.T) {
	service := &UserService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	user, err := service.RegisterUser(ctx, "Gone Soon", "gone@campus.test", "pass123", "", "")
	require.NoError(t, err)

	require.NoError(t, service.DeleteUser(ctx, user.UserID))
	_, err = service.GetUser(ctx, user.UserID)
	assert.True(t, errors.Is(err, ErrItemNotFound))
}
