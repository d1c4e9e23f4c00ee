package transport

// VariantPayload is a variant as supplied by clients, either embedded
// in a product request or posted to /productVariants directly.
type VariantPayload struct {
	ProductID   string  `json:"productId"`
	VariantName string  `json:"variantName" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int64   `json:"stock" validate:"gte=0"`
}

// ProductRequest carries product fields plus the complete replacement
// variant set. On PUT the supplied set replaces whatever exists; an
// empty or absent list clears it.
type ProductRequest struct {
	Name        string           `json:"name" validate:"required"`
	TeluguName  string           `json:"telugu_name"`
	Description string           `json:"description" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Image       string           `json:"image" validate:"required"`
	Variants    []VariantPayload `json:"variants" validate:"omitempty,dive"`
}

type CreateVariantRequest struct {
	ProductID   string  `json:"productId" validate:"required"`
	VariantName string  `json:"variantName" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int64   `json:"stock" validate:"gte=0"`
}

type UserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin Customer Vendor"`
	Area     string `json:"area" validate:"required"`
	DoorNo   string `json:"doorNo" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=AC NA BL"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
