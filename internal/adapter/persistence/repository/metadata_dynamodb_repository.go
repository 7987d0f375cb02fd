package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMetadataTableName = "gateway_metadata"

// Metadata owners. Orders and subscriptions share the order namespace.
const (
	ownerOrder   = "order#"
	ownerAccount = "account#"
)

type metadataItem struct {
	OwnerID string `dynamodbav:"owner_id"`
	Key     string `dynamodbav:"meta_key"`
	Value   string `dynamodbav:"meta_value"`
}

// MetadataDynamoRepository stores gateway key/value metadata attached to
// orders, subscriptions and store accounts.
//
// Table requirements:
//   - PK: owner_id (string), e.g. "order#42" or "account#7"
//   - SK: meta_key (string)
type MetadataDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

func NewMetadataDynamoRepository(ddb DynamoAPI) *MetadataDynamoRepository {
	return &MetadataDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("METADATA_TABLE", defaultMetadataTableName),
	}
}

func (r *MetadataDynamoRepository) Get(ctx context.Context, ownerID, key string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            metadataKey(ownerID, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it metadataItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.Value, nil
}

func (r *MetadataDynamoRepository) Set(ctx context.Context, ownerID, key, value string) error {
	av, err := attributevalue.MarshalMap(metadataItem{OwnerID: ownerID, Key: key, Value: value})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *MetadataDynamoRepository) Delete(ctx context.Context, ownerID, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       metadataKey(ownerID, key),
	})
	return err
}

// List returns every key stored for the owner.
func (r *MetadataDynamoRepository) List(ctx context.Context, ownerID string) (map[string]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: ownerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	meta := make(map[string]string, len(out.Items))
	for _, raw := range out.Items {
		var it metadataItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		meta[it.Key] = it.Value
	}
	return meta, nil
}

func metadataKey(ownerID, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		"meta_key": &types.AttributeValueMemberS{Value: key},
	}
}
