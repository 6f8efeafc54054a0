package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedQueryClient serves canned query pages and records the start key of
// each call, so tests can check that pagination is actually followed.
type pagedQueryClient struct {
	pages     []*dynamodb.QueryOutput
	startKeys []map[string]types.AttributeValue
	err       error
}

func (p *pagedQueryClient) Query(_ context.Context, input *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	p.startKeys = append(p.startKeys, input.ExclusiveStartKey)
	if p.err != nil {
		return nil, p.err
	}
	page := p.pages[0]
	p.pages = p.pages[1:]
	return page, nil
}

func queryRow(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"eventId": &types.AttributeValueMemberS{Value: id},
	}
}

func TestQueryPagesFollowsLastEvaluatedKey(t *testing.T) {
	resumeKey := queryRow("event-2")
	client := &pagedQueryClient{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{queryRow("event-1"), queryRow("event-2")},
			LastEvaluatedKey: resumeKey,
		},
		{
			Items: []map[string]types.AttributeValue{queryRow("event-3")},
		},
	}}

	items, err := queryPages(context.Background(), client, &dynamodb.QueryInput{})
	require.NoError(t, err)

	// Every row from every page is returned, not just the first page.
	require.Len(t, items, 3)
	assert.Equal(t, "event-3", items[2]["eventId"].(*types.AttributeValueMemberS).Value)

	// The second request resumed where the first page stopped.
	require.Len(t, client.startKeys, 2)
	assert.Nil(t, client.startKeys[0])
	assert.Equal(t, resumeKey, client.startKeys[1])
}

func TestQueryPagesStopsWithoutResumeKey(t *testing.T) {
	client := &pagedQueryClient{pages: []*dynamodb.QueryOutput{
		{Items: []map[string]types.AttributeValue{queryRow("event-1")}},
	}}

	items, err := queryPages(context.Background(), client, &dynamodb.QueryInput{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, client.startKeys, 1)
}

func TestQueryPagesSurfacesError(t *testing.T) {
	client := &pagedQueryClient{err: errors.New("throttled")}

	_, err := queryPages(context.Background(), client, &dynamodb.QueryInput{})
	require.Error(t, err)
}
