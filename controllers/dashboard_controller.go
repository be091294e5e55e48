package controllers

import (
	"context"

	"pharmacy-shop/config"
	"pharmacy-shop/repositories"
	"pharmacy-shop/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	orderRepo      *repositories.OrderRepository
	catalogService *services.CatalogService
}

func NewDashboardController(orderRepo *repositories.OrderRepository, catalogService *services.CatalogService) *DashboardController {
	return &DashboardController{orderRepo: orderRepo, catalogService: catalogService}
}

// AdminDashboard godoc
// @Summary Admin dashboard
// @Description Store-wide order, revenue, user and catalog statistics
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/dashboard [get]
func (ctrl *DashboardController) AdminDashboard(c *gin.Context) {
	stats, err := ctrl.orderRepo.GetDashboardStats()
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve dashboard"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Dashboard retrieved", "data": stats})
}

// BranchDashboard godoc
// @Summary Branch dashboard
// @Description Inventory overview with low-stock drugs for branch staff
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /branch/dashboard [get]
func (ctrl *DashboardController) BranchDashboard(c *gin.Context) {
	lowStock, err := ctrl.catalogService.LowStock(10)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve dashboard"})
		return
	}

	var pendingOrders int
	config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE status = 'pending'").Scan(&pendingOrders)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"low_stock":      lowStock,
			"pending_orders": pendingOrders,
		},
	})
}

// CompanyDashboard godoc
// @Summary Company dashboard
// @Description Order volume for the signed-in company's employees
// @Tags Dashboards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /company/dashboard [get]
func (ctrl *DashboardController) CompanyDashboard(c *gin.Context) {
	userID := c.GetInt("user_id")

	var companyID *int
	config.DB.QueryRow(context.Background(),
		"SELECT company_id FROM user_profiles WHERE user_id = $1", userID).Scan(&companyID)

	if companyID == nil {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Dashboard retrieved",
			"data":    gin.H{"orders": 0, "total_spent": 0},
		})
		return
	}

	var orders int
	var totalSpent float64
	config.DB.QueryRow(context.Background(), `
		SELECT COUNT(o.id), COALESCE(SUM(o.total_amount), 0)
		FROM orders o
		JOIN user_profiles up ON o.user_id = up.user_id
		WHERE up.company_id = $1 AND o.status != 'cancelled'
	`, *companyID).Scan(&orders, &totalSpent)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data": gin.H{
			"company_id":  *companyID,
			"orders":      orders,
			"total_spent": totalSpent,
		},
	})
}
