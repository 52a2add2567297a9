package handler

import (
	"net/http"

	"lapak-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type registerSellerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterSeller creates a seller account. The stored password is a hash;
// the response never includes it (the model hides it from JSON).
func (h *Handler) RegisterSeller(c *gin.Context) {
	var req registerSellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.sellers.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Login exchanges email+password for a bearer token. An unknown email is
// 404 and a wrong password 401, matching the public surface.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.sellers.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the seller resolved from the bearer token.
func (h *Handler) Me(c *gin.Context) {
	s, ok := middleware.CurrentSeller(c)
	if !ok {
		// Auth middleware guarantees a seller; reaching here is a wiring bug.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication credentials"})
		return
	}

	c.JSON(http.StatusOK, s)
}
