package controllers

import (
	"strconv"

	"pharmacy-shop/config"
	"pharmacy-shop/libs"
	"pharmacy-shop/models"
	"pharmacy-shop/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalogService *services.CatalogService
}

func NewProductController(catalogService *services.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

// GetAllProducts godoc
// @Summary Get all products
// @Description Get active products with pagination, search and category filter
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by name"
// @Param category query string false "Filter by category slug"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	search := c.Query("search")
	category := c.Query("category")

	result, err := ctrl.catalogService.GetAllProducts(page, limit, search, category)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve products"})
		return
	}

	c.JSON(200, result)
}

// GetProductByID godoc
// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// CreateDrug godoc
// @Summary Create drug
// @Description Create a new drug in the catalog (Admin)
// @Tags Admin - Drugs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateDrugRequest true "Drug Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/drugs [post]
func (ctrl *ProductController) CreateDrug(c *gin.Context) {
	var req models.CreateDrugRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.catalogService.CreateDrug(req)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Drug created", "data": product})
}

// UpdateDrug godoc
// @Summary Update drug
// @Description Update drug fields; the response is the persisted row
// @Tags Admin - Drugs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateDrugRequest true "Drug Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/drugs/{id} [patch]
func (ctrl *ProductController) UpdateDrug(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var req models.UpdateDrugRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.catalogService.UpdateDrug(id, req)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Drug updated", "data": product})
}

// DeleteDrug godoc
// @Summary Delete drug
// @Description Soft-delete a drug from the catalog (Admin)
// @Tags Admin - Drugs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/drugs/{id} [delete]
func (ctrl *ProductController) DeleteDrug(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	if err := ctrl.catalogService.DeleteDrug(id); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete drug"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Drug deleted"})
}

// UploadDrugImage godoc
// @Summary Upload drug image
// @Description Upload a product image, served from Cloudinary when configured
// @Tags Admin - Drugs
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/drugs/{id}/image [post]
func (ctrl *ProductController) UploadDrugImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image required"})
		return
	}

	localPath, err := libs.SaveUploadedImage(c, file, config.AppConfig.UploadDir)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	imageURL := "/" + localPath
	if libs.CloudinaryConfigured() {
		uploaded, err := libs.UploadProductImage(localPath)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Image upload failed"})
			return
		}
		imageURL = uploaded
	}

	product, err := ctrl.catalogService.UpdateDrug(id, models.UpdateDrugRequest{ImageURL: imageURL})
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Image updated", "data": product})
}
