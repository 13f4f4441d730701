package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/services"
)

type CatalogHandler struct {
	productService services.ProductService
}

func NewCatalogHandler(productService services.ProductService) *CatalogHandler {
	return &CatalogHandler{productService: productService}
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Query("search"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.productService.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
