package repository

import (
	"context"
	"errors"
	"time"

	"iugu_gateway/internal/domain/entities"
	"iugu_gateway/internal/usecase"
	"iugu_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultOrdersTableName   = "orders"
	ordersTransactionIDIndex = "transaction_id-index"
)

type orderItem struct {
	ID            string                  `dynamodbav:"id"`
	AccountID     int64                   `dynamodbav:"account_id"`
	Number        string                  `dynamodbav:"number"`
	Status        string                  `dynamodbav:"status"`
	PaymentMethod string                  `dynamodbav:"payment_method"`
	TransactionID string                  `dynamodbav:"transaction_id,omitempty"`
	Total         string                  `dynamodbav:"total"`
	Billing       entities.BillingAddress `dynamodbav:"billing"`

	Items          []entities.LineItem `dynamodbav:"items,omitempty"`
	Fees           []entities.Fee      `dynamodbav:"fees,omitempty"`
	Taxes          []entities.Tax      `dynamodbav:"taxes,omitempty"`
	ShippingTotal  string              `dynamodbav:"shipping_total"`
	ShippingMethod string              `dynamodbav:"shipping_method,omitempty"`

	ContainsSubscription         bool     `dynamodbav:"contains_subscription"`
	ContainsPreOrder             bool     `dynamodbav:"contains_pre_order"`
	PreOrderRequiresTokenization bool     `dynamodbav:"pre_order_requires_tokenization"`
	SubscriptionIDs              []string `dynamodbav:"subscription_ids,omitempty"`

	Notes     []orderNoteItem `dynamodbav:"notes,omitempty"`
	PaidAt    string          `dynamodbav:"paid_at,omitempty"`
	CreatedAt string          `dynamodbav:"created_at"`
	UpdatedAt string          `dynamodbav:"updated_at"`
}

type orderNoteItem struct {
	ID        string `dynamodbav:"id"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderDynamoRepository is the order store backed by DynamoDB. Gateway
// metadata lives in the metadata table so subscriptions can carry it without
// an order row.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: transaction_id-index (PK: transaction_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	meta      *MetadataDynamoRepository
	tableName string
	now       func() time.Time
}

var _ interfaces.IOrderStore = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, meta *MetadataDynamoRepository) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		meta:      meta,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		now:       time.Now,
	}
}

func (r *OrderDynamoRepository) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return r.withMetadata(ctx, fromOrderItem(it))
}

func (r *OrderDynamoRepository) FindByTransactionID(ctx context.Context, transactionID string) (entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersTransactionIDIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Items) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Order{}, err
	}
	return r.withMetadata(ctx, fromOrderItem(it))
}

// UpdateStatus moves the order and appends note when it is not empty.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus, note string) error {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if note == "" {
			return expr, vals, names, nil
		}
		noteExpr, noteVals, err := appendNote(note, now)
		if err != nil {
			return "", nil, nil, err
		}
		for k, v := range noteVals {
			vals[k] = v
		}
		names["#notes"] = "notes"
		return expr + ", " + noteExpr, vals, names, nil
	})
}

// MarkPaymentComplete records the payment and moves the order to processing.
func (r *OrderDynamoRepository) MarkPaymentComplete(ctx context.Context, orderID string) error {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #status = :status, #paid_at = :now, #updated_at = :now"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.OrderStatusProcessing)},
			":now":    &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#paid_at":    "paid_at",
			"#updated_at": "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *OrderDynamoRepository) SetTransactionID(ctx context.Context, orderID string, transactionID string) error {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #transaction_id = :tid, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":tid":        &types.AttributeValueMemberS{Value: transactionID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#transaction_id": "transaction_id",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *OrderDynamoRepository) SetPaymentMethod(ctx context.Context, orderID string, method entities.PaymentMethod) error {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		expr := "SET #payment_method = :pm, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":pm":         &types.AttributeValueMemberS{Value: string(method)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_method": "payment_method",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names, nil
	})
}

func (r *OrderDynamoRepository) AddNote(ctx context.Context, orderID string, note string) error {
	return r.update(ctx, orderID, func(now string) (string, map[string]types.AttributeValue, map[string]string, error) {
		noteExpr, vals, err := appendNote(note, now)
		if err != nil {
			return "", nil, nil, err
		}
		return "SET " + noteExpr, vals, map[string]string{"#notes": "notes"}, nil
	})
}

func (r *OrderDynamoRepository) GetMetadata(ctx context.Context, orderID string, key string) (string, error) {
	return r.meta.Get(ctx, ownerOrder+orderID, key)
}

func (r *OrderDynamoRepository) SetMetadata(ctx context.Context, orderID string, key string, value string) error {
	return r.meta.Set(ctx, ownerOrder+orderID, key, value)
}

func (r *OrderDynamoRepository) DeleteMetadata(ctx context.Context, orderID string, key string) error {
	return r.meta.Delete(ctx, ownerOrder+orderID, key)
}

func (r *OrderDynamoRepository) withMetadata(ctx context.Context, o entities.Order) (entities.Order, error) {
	meta, err := r.meta.List(ctx, ownerOrder+o.ID)
	if err != nil {
		return entities.Order{}, err
	}
	o.Metadata = meta
	return o, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string, err error),
) error {
	now := formatTime(r.now())
	updateExpr, values, names, err := build(now)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return usecase.ErrOrderNotFound
		}
		return err
	}
	return nil
}

func appendNote(message, now string) (string, map[string]types.AttributeValue, error) {
	note, err := attributevalue.MarshalMap(orderNoteItem{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
	})
	if err != nil {
		return "", nil, err
	}
	vals := map[string]types.AttributeValue{
		":note":        &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: note}}},
		":empty_notes": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
	}
	return "#notes = list_append(if_not_exists(#notes, :empty_notes), :note)", vals, nil
}

func fromOrderItem(it orderItem) entities.Order {
	var notes []entities.OrderNote
	for _, n := range it.Notes {
		notes = append(notes, entities.OrderNote{ID: n.ID, Message: n.Message, CreatedAt: parseTime(n.CreatedAt)})
	}
	return entities.Order{
		ID:                           it.ID,
		AccountID:                    it.AccountID,
		Number:                       it.Number,
		Status:                       entities.OrderStatus(it.Status),
		PaymentMethod:                entities.PaymentMethod(it.PaymentMethod),
		TransactionID:                it.TransactionID,
		Total:                        parseFloat(it.Total),
		Billing:                      it.Billing,
		Items:                        it.Items,
		Fees:                         it.Fees,
		Taxes:                        it.Taxes,
		ShippingTotal:                parseFloat(it.ShippingTotal),
		ShippingMethod:               it.ShippingMethod,
		ContainsSubscription:         it.ContainsSubscription,
		ContainsPreOrder:             it.ContainsPreOrder,
		PreOrderRequiresTokenization: it.PreOrderRequiresTokenization,
		SubscriptionIDs:              it.SubscriptionIDs,
		Notes:                        notes,
		CreatedAt:                    parseTime(it.CreatedAt),
		UpdatedAt:                    parseTime(it.UpdatedAt),
	}
}
