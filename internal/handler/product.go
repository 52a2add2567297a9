package handler

import (
	"fmt"
	"net/http"

	"lapak-be/internal/middleware"
	"lapak-be/internal/product"

	"github.com/gin-gonic/gin"
)

type newProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Price         int     `json:"price" binding:"required,gt=0"`
	Discount      int     `json:"discount" binding:"omitempty,gte=0"`
	DiscountPrice float64 `json:"discount_price" binding:"omitempty,gte=0"`
}

// updateProductRequest is a partial update: nil means the field was not
// sent (or sent as null) and stays untouched. seller_id is not patchable.
type updateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *int     `json:"price" binding:"omitempty,gt=0"`
	Discount      *int     `json:"discount" binding:"omitempty,gte=0"`
	DiscountPrice *float64 `json:"discount_price" binding:"omitempty,gte=0"`
}

func (r updateProductRequest) params() product.UpdateParams {
	return product.UpdateParams{
		Name:          r.Name,
		Price:         r.Price,
		Discount:      r.Discount,
		DiscountPrice: r.DiscountPrice,
	}
}

// ListProducts returns every product; reads are public.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.products.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// CreateProduct persists a product owned by the authenticated seller.
func (h *Handler) CreateProduct(c *gin.Context) {
	s, ok := middleware.CurrentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
		return
	}

	var req newProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.products.Create(c.Request.Context(), s.ID, product.NewProduct{
		Name:          req.Name,
		Price:         req.Price,
		Discount:      req.Discount,
		DiscountPrice: req.DiscountPrice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateProduct applies a partial update scoped to the caller's ownership.
// A wrong owner and a missing product are both 404.
func (h *Handler) UpdateProduct(c *gin.Context) {
	s, ok := middleware.CurrentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.products.Update(c.Request.Context(), id, s.ID, req.params())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	s, ok := middleware.CurrentSeller(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id, s.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("product %s deleted", id),
	})
}
