package services

import (
	"errors"
	"math"

	"pharmacy-shop/models"
	"pharmacy-shop/repositories"
)

type CatalogService struct {
	productRepo *repositories.ProductRepository
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.productRepo.GetAllCategories()
}

func (s *CatalogService) GetAllProducts(page, limit int, search, category string) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.productRepo.GetAllProducts(page, limit, search, category)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *CatalogService) GetProductByID(id int) (*models.Product, error) {
	return s.productRepo.GetProductByID(id)
}

func (s *CatalogService) CreateDrug(req models.CreateDrugRequest) (*models.Product, error) {
	product := &models.Product{
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		Price:                req.Price,
		Stock:                req.Stock,
		RequiresPrescription: req.RequiresPrescription,
		Dosage:               req.Dosage,
		Manufacturer:         req.Manufacturer,
		ImageURL:             req.ImageURL,
		IsActive:             true,
	}

	if err := s.productRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateDrug patches only the supplied fields, then returns the row as
// persisted so the caller reconciles against the stored state rather
// than its own optimistic copy.
func (s *CatalogService) UpdateDrug(id int, req models.UpdateDrugRequest) (*models.Product, error) {
	product, err := s.productRepo.GetProductByID(id)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.CategoryID > 0 {
		product.CategoryID = req.CategoryID
	}
	if req.Price > 0 {
		product.Price = req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.RequiresPrescription != nil {
		product.RequiresPrescription = *req.RequiresPrescription
	}
	if req.Dosage != "" {
		product.Dosage = req.Dosage
	}
	if req.Manufacturer != "" {
		product.Manufacturer = req.Manufacturer
	}
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.productRepo.UpdateProduct(product); err != nil {
		return nil, err
	}

	return s.productRepo.GetProductByID(id)
}

func (s *CatalogService) DeleteDrug(id int) error {
	return s.productRepo.DeleteProduct(id)
}

func (s *CatalogService) LowStock(threshold int) ([]models.Product, error) {
	if threshold < 1 {
		threshold = 10
	}
	return s.productRepo.LowStock(threshold)
}
