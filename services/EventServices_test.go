package services

import (
	"context"
	"errors"
	"testing"

	"campuslink_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEventValidatesEnums(t *testing.T) {
	service := &EventService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	_, err := service.CreateEvent(ctx, EventInput{Title: "X", Type: "webinar", CreatedBy: "club-1"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = service.CreateEvent(ctx, EventInput{
		Title: "X", Type: models.EventTypeEvent, Tags: []string{"technical", "extreme-ironing"}, CreatedBy: "club-1",
	})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = service.CreateEvent(ctx, EventInput{Title: "", Type: models.EventTypeEvent, CreatedBy: "club-1"})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	event, err := service.CreateEvent(ctx, EventInput{
		Title: "Hack Night", Type: models.EventTypeEvent, Tags: []string{"technical", "social"}, CreatedBy: "club-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.EventID)
	assert.NotEmpty(t, event.CreatedAt)
}

func TestGetAllEventsFilters(t *testing.T) {
	fake := newFakeDynamo()
	service := &EventService{Dynamo: fake}
	ctx := context.Background()

	seed := []EventInput{
		{Title: "Talk", Type: models.EventTypeAnnouncement, CreatedBy: "club-a"},
		{Title: "Mixtape", Type: models.EventTypePodcast, CreatedBy: "club-a"},
		{Title: "Gala", Type: models.EventTypeEvent, CreatedBy: "club-b"},
	}
	for _, input := range seed {
		_, err := service.CreateEvent(ctx, input)
		require.NoError(t, err)
	}

	all, err := service.GetAllEvents(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	clubA, err := service.GetAllEvents(ctx, "club-a", "")
	require.NoError(t, err)
	assert.Len(t, clubA, 2)

	podcasts, err := service.GetAllEvents(ctx, "club-a", models.EventTypePodcast)
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Equal(t, "Mixtape", podcasts[0].Title)
}

func TestGetAllEventsResolvesClubName(t *testing.T) {
	fake := newFakeDynamo()
	eventService := &EventService{Dynamo: fake}
	clubService := &ClubService{Dynamo: fake}
	ctx := context.Background()

	club, err := clubService.CreateClub(ctx, "Jazz Ensemble", "", "")
	require.NoError(t, err)
	_, err = eventService.CreateEvent(ctx, EventInput{
		Title: "Spring Concert", Type: models.EventTypeEvent, CreatedBy: club.ClubID,
	})
	require.NoError(t, err)

	events, err := eventService.GetAllEvents(ctx, club.ClubID, "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Jazz Ensemble", events[0].ClubName)
}

func TestUpdateEvent(t *testing.T) {
	service := &EventService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, EventInput{
		Title: "Draft", Type: models.EventTypeAnnouncement, CreatedBy: "club-1",
	})
	require.NoError(t, err)

	newTitle := "Final"
	newType := models.EventTypeEvent
	updated, err := service.UpdateEvent(ctx, event.EventID, EventUpdate{
		Title: &newTitle,
		Type:  &newType,
		Tags:  []string{"workshop"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, models.EventTypeEvent, updated.Type)
	assert.Equal(t, []string{"workshop"}, updated.Tags)
	assert.NotEmpty(t, updated.UpdatedAt)

	badType := "festival"
	_, err = service.UpdateEvent(ctx, event.EventID, EventUpdate{Type: &badType})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestUpdateEventTagsOnMissingEventReportsNotFound(t *testing.T) {
	service := &EventService{Dynamo: newFakeDynamo()}

	// A tags-only update needs the stored type to validate against; when the
	// event is gone that lookup failure must surface, not a bogus 400.
	_, err := service.UpdateEvent(context.Background(), "no-such-event", EventUpdate{Tags: []string{"workshop"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrItemNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))
}

func TestDeleteEvent(t *testing.T) {
	service := &EventService{Dynamo: newFakeDynamo()}
	ctx := context.Background()

	event, err := service.CreateEvent(ctx, EventInput{
		Title: "Short Lived", Type: models.EventTypeEvent, CreatedBy: "club-1",
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteEvent(ctx, event.EventID))
	_, err = service.GetEvent(ctx, event.EventID)
	assert.True(t, errors.Is(err, ErrItemNotFound))
}
