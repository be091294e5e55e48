package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone" binding:"omitempty"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=user admin branch company"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

type CreateUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Role     string `json:"role" form:"role" binding:"required,oneof=user admin branch company"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" form:"phone"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" form:"email"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=user admin branch company"`
	FullName string `json:"full_name" form:"full_name"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ToggleWishlistRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	Notes string `json:"notes"`
}

type CreateDrugRequest struct {
	Name                 string  `json:"name" form:"name" binding:"required"`
	Description          string  `json:"description" form:"description" binding:"required"`
	CategoryID           int     `json:"category_id" form:"category_id" binding:"required"`
	Price                float64 `json:"price" form:"price" binding:"required,gte=0"`
	Stock                int     `json:"stock" form:"stock" binding:"gte=0"`
	RequiresPrescription bool    `json:"requires_prescription" form:"requires_prescription"`
	Dosage               string  `json:"dosage" form:"dosage"`
	Manufacturer         string  `json:"manufacturer" form:"manufacturer"`
	ImageURL             string  `json:"image_url" form:"image_url"`
}

type UpdateDrugRequest struct {
	Name                 string  `json:"name" form:"name"`
	Description          string  `json:"description" form:"description"`
	CategoryID           int     `json:"category_id" form:"category_id"`
	Price                float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Stock                *int    `json:"stock" form:"stock" binding:"omitempty,gte=0"`
	RequiresPrescription *bool   `json:"requires_prescription" form:"requires_prescription"`
	Dosage               string  `json:"dosage" form:"dosage"`
	Manufacturer         string  `json:"manufacturer" form:"manufacturer"`
	ImageURL             string  `json:"image_url" form:"image_url"`
	IsActive             *bool   `json:"is_active" form:"is_active"`
}

type CompanyRequest struct {
	Name          string `json:"name" binding:"required,min=3"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
	LicenseNumber string `json:"license_number" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=manufacturer distributor pharmacy"`
	EmployeeCount int    `json:"employee_count" binding:"gte=0"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing delivered cancelled"`
}
