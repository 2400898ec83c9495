package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/AdwaitMishr/vitmart/internal/auth"
	"github.com/AdwaitMishr/vitmart/internal/port"
	"github.com/AdwaitMishr/vitmart/internal/store"
)

type Dependencies struct {
	Cart     *store.Cart
	User     *store.User
	Checkout *store.Checkout
	Catalog  port.Catalog
	Sessions *auth.SessionManager
	Log      logrus.FieldLogger
}

// NewRouter wires the JSON API over the two stores, the checkout flow
// and the read-only catalog. No route requires authentication: login
// always succeeds and nothing verifies the session token afterwards.
func NewRouter(deps Dependencies) *gin.Engine {
	h := &handler{deps: deps}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api := r.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/products/:id/reviews", h.GetProductReviews)

		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddCartItem)
		api.PATCH("/cart/items/:id", h.UpdateCartItem)
		api.DELETE("/cart/items/:id", h.RemoveCartItem)
		api.DELETE("/cart", h.ClearCart)

		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", h.Logout)
		api.GET("/me", h.Me)

		api.GET("/listings", h.ListListings)
		api.POST("/listings", h.CreateListing)
		api.GET("/orders", h.ListOrders)

		api.POST("/checkout", h.CheckoutHandler)
	}

	return r
}

type handler struct {
	deps Dependencies
}
