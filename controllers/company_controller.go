package controllers

import (
	"strconv"

	"pharmacy-shop/models"
	"pharmacy-shop/repositories"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	companyRepo *repositories.CompanyRepository
}

func NewCompanyController(companyRepo *repositories.CompanyRepository) *CompanyController {
	return &CompanyController{companyRepo: companyRepo}
}

// GetAllCompanies godoc
// @Summary Get all companies
// @Description Get partner companies with pagination (Admin)
// @Tags Admin - Companies
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /admin/companies [get]
func (ctrl *CompanyController) GetAllCompanies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	companies, total, err := ctrl.companyRepo.FindAll(page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve companies"})
		return
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	c.JSON(200, models.PaginationResponse{
		Success: true,
		Message: "Companies retrieved",
		Data:    companies,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	})
}

// GetCompanyByID godoc
// @Summary Get company by ID
// @Description Get a single partner company (Admin)
// @Tags Admin - Companies
// @Security BearerAuth
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/companies/{id} [get]
func (ctrl *CompanyController) GetCompanyByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid company id"})
		return
	}

	company, err := ctrl.companyRepo.FindByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Company not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Company retrieved", "data": company})
}

// CreateCompany godoc
// @Summary Create company
// @Description Register a partner company (Admin)
// @Tags Admin - Companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CompanyRequest true "Company Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/companies [post]
func (ctrl *CompanyController) CreateCompany(c *gin.Context) {
	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	status := req.Status
	if status == "" {
		status = "active"
	}

	company := &models.Company{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        status,
		LicenseNumber: req.LicenseNumber,
		Type:          req.Type,
		EmployeeCount: req.EmployeeCount,
	}

	if err := ctrl.companyRepo.Create(company); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create company"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Company created", "data": company})
}

// UpdateCompany godoc
// @Summary Update company
// @Description Update a partner company (Admin)
// @Tags Admin - Companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body models.CompanyRequest true "Company Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/companies/{id} [patch]
func (ctrl *CompanyController) UpdateCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid company id"})
		return
	}

	company, err := ctrl.companyRepo.FindByID(id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Company not found"})
		return
	}

	var req models.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	company.Name = req.Name
	company.Email = req.Email
	company.Phone = req.Phone
	company.Address = req.Address
	company.LicenseNumber = req.LicenseNumber
	company.Type = req.Type
	company.EmployeeCount = req.EmployeeCount
	if req.Status != "" {
		company.Status = req.Status
	}

	if err := ctrl.companyRepo.Update(company); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update company"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Company updated", "data": company})
}

// DeleteCompany godoc
// @Summary Delete company
// @Description Remove a partner company (Admin)
// @Tags Admin - Companies
// @Security BearerAuth
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/companies/{id} [delete]
func (ctrl *CompanyController) DeleteCompany(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid company id"})
		return
	}

	if err := ctrl.companyRepo.Delete(id); err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Company not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Company deleted"})
}
