package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtotable/storefront/internal/models"
)

func (r *MongoRepo) InsertVariant(ctx context.Context, v *models.ProductVariant) (primitive.ObjectID, error) {
	res, err := r.S.Variants.InsertOne(ctx, v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, ErrNotAcknowledged
	}
	return id, nil
}

func (r *MongoRepo) InsertVariants(ctx context.Context, vs []models.ProductVariant) ([]primitive.ObjectID, error) {
	docs := make([]interface{}, len(vs))
	for i := range vs {
		docs[i] = vs[i]
	}

	res, err := r.S.Variants.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}
	if len(res.InsertedIDs) != len(vs) {
		return nil, ErrNotAcknowledged
	}

	ids := make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, raw := range res.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, ErrNotAcknowledged
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *MongoRepo) FindVariant(ctx context.Context, id primitive.ObjectID) (*models.ProductVariant, error) {
	var v models.ProductVariant
	if err := r.S.Variants.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *MongoRepo) ListVariants(ctx context.Context) ([]models.ProductVariant, error) {
	cursor, err := r.S.Variants.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.ProductVariant, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) UpdateVariantFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error) {
	res, err := r.S.Variants.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MongoRepo) DeleteVariant(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.S.Variants.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteVariantsByProduct removes every variant referencing the given
// product. Only ever called inside the owning product's transaction.
func (r *MongoRepo) DeleteVariantsByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	res, err := r.S.Variants.DeleteMany(ctx, bson.M{"productId": productID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
