// Package store owns the MongoDB client shared by every request and
// the session-scoped transaction runner used by the product write path.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ErrNotConnected is returned when a Store is used before Open
// succeeded. Operations never silently no-op on a missing connection.
var ErrNotConnected = errors.New("store: not connected")

const (
	productsCollection = "products"
	variantsCollection = "productVariants"
	usersCollection    = "users"
)

type Store struct {
	client *mongo.Client

	Products *mongo.Collection
	Variants *mongo.Collection
	Users    *mongo.Collection
}

// Open connects to MongoDB, verifies the connection with a bounded
// ping and binds the three entity collections. The caller treats any
// error as fatal at startup.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	if uri == "" {
		return nil, fmt.Errorf("store: ATLAS_URI is empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	db := client.Database(dbName)
	return &Store{
		client:   client,
		Products: db.Collection(productsCollection),
		Variants: db.Collection(variantsCollection),
		Users:    db.Collection(usersCollection),
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// WithTransaction runs fn inside a session-scoped multi-document
// transaction. The transaction commits when fn returns nil and aborts
// when it returns an error; the session is released on every exit
// path. Collection operations made through the ctx handed to fn join
// the transaction.
func (s *Store) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if s == nil || s.client == nil {
		return ErrNotConnected
	}

	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("store: start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
