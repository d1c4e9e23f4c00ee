package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrValidation reports a payload that failed request validation.
var ErrValidation = errors.New("validation failed")

// ErrInvalidID reports an identifier that is not a valid ObjectID hex.
var ErrInvalidID = errors.New("invalid id")

// ErrNotModified reports an update that matched a document but changed
// nothing; handlers surface it as a conflict rather than the legacy
// not-modified signal.
var ErrNotModified = errors.New("matched but not modified")

// ParseID converts a path parameter into an ObjectID, mapping
// malformed input to ErrInvalidID so handlers can answer 400 instead
// of a generic failure.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}
