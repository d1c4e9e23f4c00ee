package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmtotable/storefront/internal/models"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/transport"
)

type VariantRepo interface {
	InsertVariant(ctx context.Context, v *models.ProductVariant) (primitive.ObjectID, error)
	FindVariant(ctx context.Context, id primitive.ObjectID) (*models.ProductVariant, error)
	ListVariants(ctx context.Context) ([]models.ProductVariant, error)
	UpdateVariantFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
	DeleteVariant(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// VariantService serves the standalone /productVariants routes. The
// product write path never goes through here; it owns its variant
// mutations transactionally.
type VariantService struct {
	Repo VariantRepo
}

func (s *VariantService) Get(ctx context.Context, id primitive.ObjectID) (*models.ProductVariant, error) {
	return s.Repo.FindVariant(ctx, id)
}

func (s *VariantService) List(ctx context.Context) ([]models.ProductVariant, error) {
	return s.Repo.ListVariants(ctx)
}

func (s *VariantService) Create(ctx context.Context, req transport.CreateVariantRequest) (primitive.ObjectID, error) {
	productID, err := ParseID(req.ProductID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	v := models.ProductVariant{
		ProductID:   productID,
		VariantName: req.VariantName,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedAt:   time.Now().UTC(),
	}
	return s.Repo.InsertVariant(ctx, &v)
}

func (s *VariantService) Replace(ctx context.Context, id primitive.ObjectID, req transport.CreateVariantRequest) error {
	productID, err := ParseID(req.ProductID)
	if err != nil {
		return err
	}

	fields := bson.M{
		"productId":   productID,
		"variantName": req.VariantName,
		"price":       req.Price,
		"stock":       req.Stock,
		"updatedAt":   time.Now().UTC(),
	}

	matched, modified, err := s.Repo.UpdateVariantFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return repo.ErrNotFound
	}
	if modified == 0 {
		return ErrNotModified
	}
	return nil
}

func (s *VariantService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.Repo.DeleteVariant(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return repo.ErrNotFound
	}
	return nil
}
