// Package metadata stores small named string values (the session credential
// among them) in the "metadata" table of the local client database.
package metadata

import (
	"context"
)

// Repository is a string key/value table.
//
// Get returns common.ErrorNotFound when the key is absent.
// Delete succeeds when there is nothing to remove.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
