package controllers

import (
	"context"
	"strings"
	"time"

	"pharmacy-shop/config"
	"pharmacy-shop/models"

	"github.com/gin-gonic/gin"
)

type CategoryController struct{}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// GetCategories godoc
// @Summary Get all categories
// @Description Get list of all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, slug, is_active, created_at FROM categories ORDER BY name")
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve categories"})
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive, &cat.CreatedAt)
		categories = append(categories, cat)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved",
		"data":    categories,
	})
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category (Admin only)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,min=3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 3 characters"})
		return
	}

	name := strings.TrimSpace(req.Name)
	slug := slugify(name)

	var exists int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM categories WHERE slug=$1", slug).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category already exists"})
		return
	}

	var cat models.Category
	err := config.DB.QueryRow(context.Background(),
		"INSERT INTO categories (name, slug, is_active, created_at) VALUES ($1, $2, true, $3) RETURNING id, name, slug, is_active, created_at",
		name, slug, time.Now()).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive, &cat.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create category"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Category created", "data": cat})
}

// UpdateCategory godoc
// @Summary Update category
// @Description Rename a category (Admin only)
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/categories/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Name     string `json:"name" binding:"required,min=3"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Category name must be at least 3 characters"})
		return
	}

	name := strings.TrimSpace(req.Name)
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var cat models.Category
	err := config.DB.QueryRow(context.Background(),
		"UPDATE categories SET name=$1, slug=$2, is_active=$3 WHERE id=$4 RETURNING id, name, slug, is_active, created_at",
		name, slugify(name), isActive, id).Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.IsActive, &cat.CreatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category updated", "data": cat})
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Deactivate a category (Admin only)
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	var inUse int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM products WHERE category_id=$1 AND is_active=true", id).Scan(&inUse)
	if inUse > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Category still has active products"})
		return
	}

	result, err := config.DB.Exec(context.Background(),
		"UPDATE categories SET is_active=false WHERE id=$1", id)
	if err != nil || result.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category deleted"})
}
