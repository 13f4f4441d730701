package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/services"
)

type CartHandler struct {
	cartService     services.CartService
	checkoutService services.CheckoutService
}

func NewCartHandler(cartService services.CartService, checkoutService services.CheckoutService) *CartHandler {
	return &CartHandler{cartService: cartService, checkoutService: checkoutService}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.cartService.GetCart(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart. Please try again."})
		return
	}

	totalItems, totalPrice := services.CartTotals(items)
	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_items": totalItems,
		"total_price": totalPrice,
	})
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	item, err := h.cartService.AddToCart(currentUserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.cartService.UpdateQuantity(currentUserID(c), uint(productID), req.Delta)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *CartHandler) RemoveItems(c *gin.Context) {
	var req struct {
		ProductIDs []uint `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.cartService.RemoveItems(currentUserID(c), req.ProductIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}

func (h *CartHandler) StartCheckout(c *gin.Context) {
	var req struct {
		ProductIDs []uint `json:"product_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preview, err := h.checkoutService.StartCheckout(currentUserID(c), req.ProductIDs)
	if err != nil {
		if errors.Is(err, services.ErrNoItemsSelected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items selected. Please choose products to check out."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start checkout. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkout": preview})
}
