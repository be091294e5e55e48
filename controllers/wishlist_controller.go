package controllers

import (
	"strconv"

	"pharmacy-shop/models"
	"pharmacy-shop/services"

	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	cartService *services.CartService
}

func NewWishlistController(cartService *services.CartService) *WishlistController {
	return &WishlistController{cartService: cartService}
}

// GetWishlist godoc
// @Summary Get wishlist
// @Description Get the current user's saved products
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID := c.GetInt("user_id")
	items := ctrl.cartService.Wishlist(userID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Wishlist retrieved",
		"data":    gin.H{"items": items, "count": len(items)},
	})
}

// Toggle godoc
// @Summary Toggle wishlist membership
// @Description Add the product when absent, remove it when present
// @Tags Wishlist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ToggleWishlistRequest true "Toggle Request"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/toggle [post]
func (ctrl *WishlistController) Toggle(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	added, err := ctrl.cartService.ToggleWishlist(userID, req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	message := "Product removed from wishlist"
	if added {
		message = "Product added to wishlist"
	}
	c.JSON(200, gin.H{"success": true, "message": message, "data": gin.H{"in_wishlist": added}})
}

// Remove godoc
// @Summary Remove product from wishlist
// @Description Remove a saved product; no-op when absent
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /wishlist/{productId} [delete]
func (ctrl *WishlistController) Remove(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	ctrl.cartService.RemoveFromWishlist(userID, productID)
	c.JSON(200, gin.H{"success": true, "message": "Product removed from wishlist"})
}

// AddToCart godoc
// @Summary Add wishlist item to cart
// @Description Copy a saved product into the cart, keeping the wishlist entry
// @Tags Wishlist
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /wishlist/{productId}/cart [post]
func (ctrl *WishlistController) AddToCart(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product id"})
		return
	}

	cart, err := ctrl.cartService.AddWishlistItemToCart(userID, productID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not in wishlist"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product added to cart", "data": cart})
}
