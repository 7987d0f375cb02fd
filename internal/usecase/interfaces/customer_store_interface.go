package interfaces

import "context"

// ICustomerStore keeps gateway metadata on store accounts (e.g. the remote
// customer id). Missing keys read as "".
type ICustomerStore interface {
	GetMetadata(ctx context.Context, accountID int64, key string) (string, error)
	SetMetadata(ctx context.Context, accountID int64, key string, value string) error
}
