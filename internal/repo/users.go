package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtotable/storefront/internal/models"
)

func (r *MongoRepo) InsertUser(ctx context.Context, u *models.User) (primitive.ObjectID, error) {
	res, err := r.S.Users.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, ErrNotAcknowledged
	}
	return id, nil
}

func (r *MongoRepo) FindUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := r.S.Users.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.S.Users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.User, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) UpdateUserFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error) {
	res, err := r.S.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MongoRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.S.Users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
