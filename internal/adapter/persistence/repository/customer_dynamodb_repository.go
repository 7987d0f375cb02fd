package repository

import (
	"context"
	"strconv"

	"iugu_gateway/internal/usecase/interfaces"
)

// CustomerDynamoRepository keeps gateway metadata on store accounts in the
// metadata table.
type CustomerDynamoRepository struct {
	meta *MetadataDynamoRepository
}

var _ interfaces.ICustomerStore = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(meta *MetadataDynamoRepository) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{meta: meta}
}

func (r *CustomerDynamoRepository) GetMetadata(ctx context.Context, accountID int64, key string) (string, error) {
	return r.meta.Get(ctx, accountOwner(accountID), key)
}

func (r *CustomerDynamoRepository) SetMetadata(ctx context.Context, accountID int64, key string, value string) error {
	return r.meta.Set(ctx, accountOwner(accountID), key, value)
}

func accountOwner(accountID int64) string {
	return ownerAccount + strconv.FormatInt(accountID, 10)
}
