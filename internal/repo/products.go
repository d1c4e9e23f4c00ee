package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/farmtotable/storefront/internal/models"
)

func (r *MongoRepo) InsertProduct(ctx context.Context, p *models.Product) (primitive.ObjectID, error) {
	res, err := r.S.Products.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, ErrNotAcknowledged
	}
	return id, nil
}

func (r *MongoRepo) FindProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var p models.Product
	if err := r.S.Products.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListProductsWithVariants joins every product with the variants that
// reference it, mirroring the read shape clients consume.
func (r *MongoRepo) ListProductsWithVariants(ctx context.Context) ([]models.ProductWithVariants, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "productVariants"},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "productId"},
			{Key: "as", Value: "variants"},
		}}},
	}

	cursor, err := r.S.Products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := make([]models.ProductWithVariants, 0)
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProductFields applies a $set of the given fields and reports
// how many documents matched and were modified.
func (r *MongoRepo) UpdateProductFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error) {
	res, err := r.S.Products.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (r *MongoRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.S.Products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
