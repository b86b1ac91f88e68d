package ledger

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual_IsOrderSensitive(t *testing.T) {
	assert.True(t, Equal([]string{"1", "2"}, []string{"1", "2"}))
	assert.True(t, Equal([]string{}, nil))
	assert.False(t, Equal([]string{"1", "2"}, []string{"2", "1"}))
	assert.False(t, Equal([]string{"1", "2"}, []string{"1", "2", "3"}))
}

type fakeDynamo struct {
	item    map[string]types.AttributeValue
	getIn   *dynamodb.GetItemInput
	putIn   *dynamodb.PutItemInput
	failGet error
	failPut error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.failGet != nil {
		return nil, f.failGet
	}
	return &dynamodb.GetItemOutput{Item: f.item}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.failPut != nil {
		return nil, f.failPut
	}
	f.item = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func TestDynamo_EmptyWhenNoItem(t *testing.T) {
	client := &fakeDynamo{}
	ids, err := newDynamo(client, "twtr_fav", "tumblr", logger.NewNop()).GetProcessedIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.NotNil(t, ids)

	assert.Equal(t, "twtr_fav", *client.getIn.TableName)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "tumblr"}, client.getIn.Key["target_id"])
}

func TestDynamo_RoundTrip(t *testing.T) {
	client := &fakeDynamo{}
	repo := newDynamo(client, "twtr_fav", "tumblr", logger.NewNop())

	require.NoError(t, repo.SetProcessedIDs(context.Background(), []string{"3", "1", "2"}))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "tumblr"}, client.putIn.Item["target_id"])

	ids, err := repo.GetProcessedIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, ids)
}

func TestDynamo_Errors(t *testing.T) {
	repo := newDynamo(&fakeDynamo{failGet: assert.AnError, failPut: assert.AnError}, "t", "tumblr", logger.NewNop())

	_, err := repo.GetProcessedIDs(context.Background())
	assert.ErrorIs(t, err, errors.ErrLedger)

	err = repo.SetProcessedIDs(context.Background(), []string{"1"})
	assert.ErrorIs(t, err, errors.ErrLedger)
}
