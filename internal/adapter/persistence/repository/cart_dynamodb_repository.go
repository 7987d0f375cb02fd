package repository

import (
	"context"
	"strconv"

	"iugu_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

// CartDynamoRepository empties persisted carts.
//
// Table requirements:
//   - PK: account_id (number)
type CartDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICart = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb DynamoAPI) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

// EmptyCart removes the account cart. Removing a missing cart is not an error.
func (r *CartDynamoRepository) EmptyCart(ctx context.Context, accountID int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"account_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(accountID, 10)},
		},
	})
	return err
}
