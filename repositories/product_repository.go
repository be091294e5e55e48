package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pharmacy-shop/config"
	"pharmacy-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `p.id, p.name, p.description, p.category_id, c.slug, p.price, p.stock,
	p.requires_prescription, COALESCE(p.dosage, ''), COALESCE(p.manufacturer, ''),
	COALESCE(p.image_url, ''), p.is_active, p.created_at, p.updated_at`

func scanProduct(row interface{ Scan(...any) error }) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CategorySlug, &p.Price, &p.Stock,
		&p.RequiresPrescription, &p.Dosage, &p.Manufacturer,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	p.InStock = p.Stock > 0
	return p, err
}

func (r *ProductRepository) GetAllCategories() ([]models.Category, error) {
	query := `SELECT id, name, slug, is_active, created_at FROM categories ORDER BY name`

	rows, err := config.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// GetAllProducts lists active products with optional name search and
// category slug filter.
func (r *ProductRepository) GetAllProducts(page, limit int, search, categorySlug string) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	whereConditions := []string{"p.is_active = true"}
	args := []interface{}{}
	argIndex := 1

	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("p.name ILIKE $%d", argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}
	if categorySlug != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("c.slug = $%d", argIndex))
		args = append(args, categorySlug)
		argIndex++
	}

	where := " WHERE " + strings.Join(whereConditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM products p JOIN categories c ON p.category_id = c.id` + where
	if err := config.DB.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id` +
		where + fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

func (r *ProductRepository) GetProductByID(id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id WHERE p.id = $1`

	p, err := scanProduct(config.DB.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) CreateProduct(product *models.Product) error {
	query := `
		INSERT INTO products (name, description, category_id, price, stock, requires_prescription,
			dosage, manufacturer, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, $10, $11)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	err := config.DB.QueryRow(context.Background(), query,
		product.Name, product.Description, product.CategoryID, product.Price, product.Stock,
		product.RequiresPrescription, product.Dosage, product.Manufacturer, product.ImageURL,
		now, now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return err
	}
	product.IsActive = true
	product.InStock = product.Stock > 0
	return nil
}

func (r *ProductRepository) UpdateProduct(product *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, category_id = $3, price = $4,
	          stock = $5, requires_prescription = $6, dosage = $7, manufacturer = $8,
	          image_url = $9, is_active = $10, updated_at = $11 WHERE id = $12`
	_, err := config.DB.Exec(context.Background(), query,
		product.Name, product.Description, product.CategoryID, product.Price,
		product.Stock, product.RequiresPrescription, product.Dosage, product.Manufacturer,
		product.ImageURL, product.IsActive, time.Now(), product.ID,
	)
	return err
}

// DeleteProduct soft-deletes so historical order items keep their rows.
func (r *ProductRepository) DeleteProduct(id int) error {
	query := `UPDATE products SET is_active = false, updated_at = $1 WHERE id = $2`
	_, err := config.DB.Exec(context.Background(), query, time.Now(), id)
	return err
}

// LowStock lists active products at or below the threshold, for the
// branch dashboard.
func (r *ProductRepository) LowStock(threshold int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON p.category_id = c.id
	          WHERE p.is_active = true AND p.stock <= $1 ORDER BY p.stock ASC`

	rows, err := config.DB.Query(context.Background(), query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
