package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lazshoppe/internal/services"
)

// AccountHandler covers the signed-in shopper's profile, wishlist, and the
// public contact form.
type AccountHandler struct {
	profileService  services.ProfileService
	wishlistService services.WishlistService
	supportService  services.SupportService
}

func NewAccountHandler(
	profileService services.ProfileService,
	wishlistService services.WishlistService,
	supportService services.SupportService,
) *AccountHandler {
	return &AccountHandler{
		profileService:  profileService,
		wishlistService: wishlistService,
		supportService:  supportService,
	}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.Get(currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req struct {
		FullName string `json:"full_name" binding:"required"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	profile, err := h.profileService.Update(currentUserID(c), req.FullName, req.Phone, req.Address)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (h *AccountHandler) GetWishlist(c *gin.Context) {
	entries, err := h.wishlistService.List(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load wishlist. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlist": entries})
}

func (h *AccountHandler) ToggleWishlist(c *gin.Context) {
	var req struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	added, err := h.wishlistService.Toggle(currentUserID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"added": added})
}

func (h *AccountHandler) CreateSupportRequest(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	request, err := h.supportService.Create(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit request. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"request": request})
}
