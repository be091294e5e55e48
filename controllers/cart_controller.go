package controllers

import (
	"errors"
	"strconv"

	"pharmacy-shop/middleware"
	"pharmacy-shop/models"
	"pharmacy-shop/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// GetCart godoc
// @Summary Get cart
// @Description Get the current user's cart with total and item count
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved",
		"data":    ctrl.cartService.Cart(userID),
	})
}

// AddItem godoc
// @Summary Add product to cart
// @Description Add a product to the cart, incrementing quantity when already present
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Add Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	cart, err := ctrl.cartService.AddToCart(userID, req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product added to cart", "data": cart})
}

// SetQuantity godoc
// @Summary Set cart line quantity
// @Description Set the quantity for a product; zero removes the line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.SetQuantityRequest true "Quantity Request"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(400, gin.H{"success": false, "message": "Quantity is required"})
		return
	}
	if *req.Quantity < 0 {
		c.JSON(400, gin.H{"success": false, "message": "Quantity cannot be negative"})
		return
	}

	cart := ctrl.cartService.SetQuantity(userID, productID, *req.Quantity)
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cart})
}

// RemoveItem godoc
// @Summary Remove product from cart
// @Description Remove a product's line from the cart; no-op when absent
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	cart := ctrl.cartService.RemoveFromCart(userID, productID)
	c.JSON(200, gin.H{"success": true, "message": "Product removed from cart", "data": cart})
}

// Checkout godoc
// @Summary Checkout
// @Description Complete the order for the current cart and clear it
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	session := middleware.SessionFrom(c)
	order, err := ctrl.cartService.Checkout(c.Request.Context(), session, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSignInRequired):
			c.JSON(401, gin.H{"success": false, "message": "Sign in required", "redirect": middleware.RedirectSignIn})
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		default:
			c.JSON(500, gin.H{"success": false, "message": "Checkout failed"})
		}
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order placed", "data": order})
}
