package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdwaitMishr/vitmart/internal/domain"
)

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice domain.Money      `json:"totalPrice"`
}

func (h *handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cartResponse{
		Items:      h.deps.Cart.Items(),
		TotalItems: h.deps.Cart.TotalItems(),
		TotalPrice: h.deps.Cart.TotalPrice(),
	})
}

type addCartItemReq struct {
	ID       string       `json:"id" binding:"required"`
	Name     string       `json:"name" binding:"required"`
	Price    domain.Money `json:"price"`
	Quantity int          `json:"quantity" binding:"required,gt=0"`
	Image    string       `json:"image"`
}

func (h *handler) AddCartItem(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.deps.Cart.AddItem(domain.CartItem{
		ProductID: req.ID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Image:     req.Image,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type updateCartItemReq struct {
	// pointer so an explicit 0 (which removes the entry) still binds
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *handler) UpdateCartItem(c *gin.Context) {
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.deps.Cart.UpdateQuantity(c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) RemoveCartItem(c *gin.Context) {
	h.deps.Cart.RemoveItem(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *handler) ClearCart(c *gin.Context) {
	h.deps.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
