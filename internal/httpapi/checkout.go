package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdwaitMishr/vitmart/internal/store"
)

type checkoutReq struct {
	// ProductID set means the buy-now path; empty means purchase the cart
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *handler) CheckoutHandler(c *gin.Context) {
	// an empty body means the plain cart checkout
	var req checkoutReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
	}

	var (
		order interface{}
		err   error
	)
	if req.ProductID != "" {
		order, err = h.deps.Checkout.CheckoutProduct(c.Request.Context(), req.ProductID, req.Quantity)
	} else {
		order, err = h.deps.Checkout.CheckoutCart(c.Request.Context())
	}

	switch {
	case errors.Is(err, store.ErrCheckoutInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "checkout already in progress"})
	case errors.Is(err, store.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case err != nil:
		h.deps.Log.WithError(err).Error("checkout failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
	default:
		c.JSON(http.StatusOK, order)
	}
}
