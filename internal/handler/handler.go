// Package handler exposes the REST surface: seller registration, login,
// and public reads plus ownership-scoped writes on products.
package handler

import (
	"lapak-be/internal/auth"
	"lapak-be/internal/middleware"
	"lapak-be/internal/product"
	"lapak-be/internal/seller"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	sellers  seller.Service
	products product.Service
	tokens   *auth.TokenManager
}

func New(sellers seller.Service, products product.Service, tokens *auth.TokenManager) *Handler {
	return &Handler{
		sellers:  sellers,
		products: products,
		tokens:   tokens,
	}
}

// RegisterRoutes wires every endpoint onto the router. Reads are public;
// mutations sit behind the auth middleware.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	authRequired := middleware.Auth(h.tokens, h.sellers)

	r.POST("/seller", h.RegisterSeller)
	r.POST("/login", h.Login)
	r.GET("/me", authRequired, h.Me)

	r.GET("/product", h.ListProducts)
	r.GET("/product/:id", h.GetProduct)
	r.POST("/product", authRequired, h.CreateProduct)
	r.PUT("/product/:id", authRequired, h.UpdateProduct)
	r.DELETE("/product/:id", authRequired, h.DeleteProduct)
}
