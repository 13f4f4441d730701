package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/services"
)

type OrderHandler struct {
	checkoutService services.CheckoutService
	orderService    services.OrderService
}

func NewOrderHandler(checkoutService services.CheckoutService, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService, orderService: orderService}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	order, lines, err := h.checkoutService.PlaceOrder(currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNoItemsSelected) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No items selected. Please choose products to check out."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": order, "items": lines})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListByUser(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, lines, err := h.orderService.GetForUser(currentUserID(c), uint(orderID))
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    order,
		"items":    lines,
		"tracking": services.ProjectTracking(order.Status),
	})
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, err := h.orderService.Cancel(currentUserID(c), uint(orderID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrCannotCancel):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
