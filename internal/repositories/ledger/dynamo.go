package ledger

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/orgball2608/tumblr-likes-archiver/internal/awsconf"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/config"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/errors"
	"github.com/orgball2608/tumblr-likes-archiver/pkg/logger"
)

const (
	keyAttr   = "target_id"
	postsAttr = "posts"
)

type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// Dynamo keeps the ledger as one item {target_id: S, posts: L of S}.
type Dynamo struct {
	client   dynamoAPI
	table    string
	targetID string
	logger   logger.Logger
}

func NewDynamo(cfg *config.Config, log logger.Logger) (*Dynamo, error) {
	awsCfg, err := awsconf.Load(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return newDynamo(dynamodb.NewFromConfig(awsCfg), cfg.Ledger.Table, cfg.Ledger.TargetID, log), nil
}

func newDynamo(client dynamoAPI, table, targetID string, log logger.Logger) *Dynamo {
	return &Dynamo{
		client:   client,
		table:    table,
		targetID: targetID,
		logger:   log.WithComponent("DynamoLedger"),
	}
}

var _ Repository = (*Dynamo)(nil)

func (d *Dynamo) key() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr: &types.AttributeValueMemberS{Value: d.targetID},
	}
}

func (d *Dynamo) GetProcessedIDs(ctx context.Context) ([]string, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       d.key(),
	})
	if err != nil {
		return nil, errors.Ledger(err, "failed to get ledger item")
	}

	ids := []string{}
	if out == nil || out.Item == nil {
		return ids, nil
	}
	list, ok := out.Item[postsAttr].(*types.AttributeValueMemberL)
	if !ok {
		return ids, nil
	}
	for _, v := range list.Value {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			ids = append(ids, s.Value)
		}
	}
	return ids, nil
}

func (d *Dynamo) SetProcessedIDs(ctx context.Context, ids []string) error {
	list := make([]types.AttributeValue, 0, len(ids))
	for _, id := range ids {
		list = append(list, &types.AttributeValueMemberS{Value: id})
	}

	item := d.key()
	item[postsAttr] = &types.AttributeValueMemberL{Value: list}

	_, err := d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return errors.Ledger(err, "failed to put ledger item")
	}

	d.logger.Info("Ledger updated", "table", d.table, "count", len(ids))
	return nil
}
