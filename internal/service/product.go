package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/farmtotable/storefront/internal/models"
	"github.com/farmtotable/storefront/internal/repo"
	"github.com/farmtotable/storefront/internal/transport"
)

// TxRunner executes fn as one atomic unit: commit when fn returns nil,
// roll back otherwise. Implemented by store.Store over Mongo sessions.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ProductRepo interface {
	InsertProduct(ctx context.Context, p *models.Product) (primitive.ObjectID, error)
	FindProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListProductsWithVariants(ctx context.Context) ([]models.ProductWithVariants, error)
	UpdateProductFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (matched, modified int64, err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// VariantInventory is the variant-side surface the product coordinator
// mutates inside its transactions.
type VariantInventory interface {
	InsertVariants(ctx context.Context, vs []models.ProductVariant) ([]primitive.ObjectID, error)
	DeleteVariantsByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
}

// ProductService coordinates the product/variant write path. A product
// and its variant set are only ever created, replaced or deleted
// together: every mutation here runs inside a single transaction so
// readers never observe one without the other.
type ProductService struct {
	Repo     ProductRepo
	Variants VariantInventory
	Tx       TxRunner
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.Repo.FindProduct(ctx, id)
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductWithVariants, error) {
	return s.Repo.ListProductsWithVariants(ctx)
}

// Create inserts the product and, if supplied, its variants tagged
// with the generated product id. Any variant failure rolls the product
// back too.
func (s *ProductService) Create(ctx context.Context, req transport.ProductRequest) (primitive.ObjectID, error) {
	var productID primitive.ObjectID

	err := s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		p := models.Product{
			Name:        req.Name,
			TeluguName:  req.TeluguName,
			Description: req.Description,
			Category:    req.Category,
			Image:       req.Image,
			CreatedAt:   now,
		}

		id, err := s.Repo.InsertProduct(ctx, &p)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		productID = id

		if len(req.Variants) == 0 {
			return nil
		}
		if _, err := s.Variants.InsertVariants(ctx, variantSet(id, req.Variants, now)); err != nil {
			return fmt.Errorf("insert variants: %w", err)
		}
		return nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	return productID, nil
}

// Replace sets the product's fields and swaps its entire variant set
// for the supplied one. The old set is always deleted first; an empty
// request list therefore clears the product's variants.
func (s *ProductService) Replace(ctx context.Context, id primitive.ObjectID, req transport.ProductRequest) error {
	return s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		fields := bson.M{
			"name":        req.Name,
			"telugu_name": req.TeluguName,
			"description": req.Description,
			"category":    req.Category,
			"image":       req.Image,
			"updatedAt":   now,
		}

		matched, _, err := s.Repo.UpdateProductFields(ctx, id, fields)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if matched == 0 {
			return repo.ErrNotFound
		}

		if _, err := s.Variants.DeleteVariantsByProduct(ctx, id); err != nil {
			return fmt.Errorf("delete variants: %w", err)
		}
		if len(req.Variants) == 0 {
			return nil
		}
		if _, err := s.Variants.InsertVariants(ctx, variantSet(id, req.Variants, now)); err != nil {
			return fmt.Errorf("insert variants: %w", err)
		}
		return nil
	})
}

// Delete removes the product and cascades to every variant referencing
// it within the same transaction.
func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.Tx.WithTransaction(ctx, func(ctx context.Context) error {
		deleted, err := s.Repo.DeleteProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if deleted == 0 {
			return repo.ErrNotFound
		}

		if _, err := s.Variants.DeleteVariantsByProduct(ctx, id); err != nil {
			return fmt.Errorf("delete variants: %w", err)
		}
		return nil
	})
}

func variantSet(productID primitive.ObjectID, payloads []transport.VariantPayload, now time.Time) []models.ProductVariant {
	vs := make([]models.ProductVariant, 0, len(payloads))
	for _, p := range payloads {
		vs = append(vs, models.ProductVariant{
			ProductID:   productID,
			VariantName: p.VariantName,
			Price:       p.Price,
			Stock:       p.Stock,
			CreatedAt:   now,
		})
	}
	return vs
}
