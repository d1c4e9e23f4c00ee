package repo

import (
	"errors"

	"github.com/farmtotable/storefront/internal/store"
)

// ErrNotFound reports that no document matched the given identifier.
var ErrNotFound = errors.New("record not found")

// ErrNotAcknowledged reports that the store did not acknowledge a write.
var ErrNotAcknowledged = errors.New("write not acknowledged")

type MongoRepo struct {
	S *store.Store
}
