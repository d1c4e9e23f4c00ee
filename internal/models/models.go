package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleAdmin    = "Admin"
	RoleCustomer = "Customer"
	RoleVendor   = "Vendor"
)

// User statuses: active, not active, blocked.
const (
	StatusActive    = "AC"
	StatusNotActive = "NA"
	StatusBlocked   = "BL"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	TeluguName  string             `bson:"telugu_name" json:"telugu_name"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type ProductVariant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID   primitive.ObjectID `bson:"productId" json:"productId"`
	VariantName string             `bson:"variantName" json:"variantName"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int64              `bson:"stock" json:"stock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProductWithVariants is the denormalized shape produced by the
// products listing $lookup.
type ProductWithVariants struct {
	Product  `bson:",inline"`
	Variants []ProductVariant `bson:"variants" json:"variants"`
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Password  string             `bson:"password" json:"password"`
	Role      string             `bson:"role" json:"role"`
	Area      string             `bson:"area" json:"area"`
	DoorNo    string             `bson:"doorNo" json:"doorNo"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
