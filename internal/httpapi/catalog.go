package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Catalog.Products())
}

func (h *handler) GetProduct(c *gin.Context) {
	product, ok := h.deps.Catalog.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *handler) GetProductReviews(c *gin.Context) {
	if _, ok := h.deps.Catalog.ProductByID(c.Param("id")); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, h.deps.Catalog.Reviews())
}
