package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdwaitMishr/vitmart/internal/domain"
)

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
}

// Login always succeeds: credentials are not verified anywhere in this
// storefront. The response carries a demo session token the client can
// hold, nothing ever checks it.
func (h *handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.deps.User.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, expiresAt, err := h.deps.Sessions.Sign(req.Email)
	if err != nil {
		h.deps.Log.WithError(err).Warn("failed to sign session token")
	}

	c.JSON(http.StatusOK, gin.H{
		"user":      h.deps.User.Profile(),
		"token":     token,
		"expiresAt": expiresAt,
	})
}

func (h *handler) Logout(c *gin.Context) {
	h.deps.User.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) Me(c *gin.Context) {
	profile := h.deps.User.Profile()
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{"isLoggedIn": false, "user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isLoggedIn": h.deps.User.IsLoggedIn(), "user": profile})
}

func (h *handler) ListListings(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.User.Listings())
}

type createListingReq struct {
	Name     string       `json:"name" binding:"required"`
	Category string       `json:"category"`
	Price    domain.Money `json:"price"`
	Image    string       `json:"image"`
}

func (h *handler) CreateListing(c *gin.Context) {
	var req createListingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	category := req.Category
	if category == "" {
		category = domain.CategoryOther
	}

	listing := h.deps.User.AddListing(c.Request.Context(), domain.ListingDraft{
		Name:     req.Name,
		Category: category,
		Price:    req.Price,
		Image:    req.Image,
	})

	c.JSON(http.StatusCreated, listing)
}

func (h *handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.User.Orders())
}
