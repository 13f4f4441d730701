package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/models"
	"lazshoppe/internal/services"
)

type AdminHandler struct {
	productService   services.ProductService
	orderService     services.OrderService
	profileService   services.ProfileService
	supportService   services.SupportService
	dashboardService services.DashboardService
}

func NewAdminHandler(
	productService services.ProductService,
	orderService services.OrderService,
	profileService services.ProfileService,
	supportService services.SupportService,
	dashboardService services.DashboardService,
) *AdminHandler {
	return &AdminHandler{
		productService:   productService,
		orderService:     orderService,
		profileService:   profileService,
		supportService:   supportService,
		dashboardService: dashboardService,
	}
}

// Dashboard

func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Products

func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Query("search"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required"`
		Unit        string  `json:"unit"`
		Badge       string  `json:"badge"`
		Inventory   int     `json:"inventory"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Unit:        req.Unit,
		Badge:       req.Badge,
		Inventory:   req.Inventory,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	}
	if err := h.productService.Create(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := h.productService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product. Please try again."})
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price" binding:"required"`
		Unit        string  `json:"unit"`
		Badge       string  `json:"badge"`
		Inventory   int     `json:"inventory"`
		Category    string  `json:"category"`
		ImageURL    string  `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Unit = req.Unit
	product.Badge = req.Badge
	product.Inventory = req.Inventory
	product.Category = req.Category
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if err := h.productService.Update(product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := h.productService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Orders

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Query("search"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	order, lines, err := h.orderService.GetWithLines(uint(id))
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

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.orderService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStatusFinal), errors.Is(err, services.ErrAlreadyCurrent):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Users

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.profileService.ListUsers(c.Query("search"), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.profileService.UpdateRole(uint(id), req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user role. Please try again."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": profile})
}

// Support

func (h *AdminHandler) ListSupportRequests(c *gin.Context) {
	requests, err := h.supportService.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load support requests. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *AdminHandler) ResolveSupportRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request id"})
		return
	}

	request, err := h.supportService.Resolve(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrSupportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve request. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"request": request})
}
