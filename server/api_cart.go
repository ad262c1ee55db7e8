package cartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	carthttpmapper "github.com/sushikitos/cart-api/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/sushikitos/cart-api/internal/domains/cart/ports"
)

// CartAPI wires HTTP transport with the cart service.
type CartAPI struct {
	service cartports.Service
}

// NewCartAPI creates a CartAPI backed by the provided service.
func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Get /v1/cart
// Current cart summary
func (api *CartAPI) GetCart(c *gin.Context) {
	summary, err := api.service.Summary(c.Request.Context())
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSummary(summary))
}

// Post /v1/cart/items
// Add one unit of a product to the cart
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload addItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	summary, err := api.service.AddItem(c.Request.Context(), payload.ProductID)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSummary(summary))
}

// Put /v1/cart/items/:productId
// Set the quantity of an existing line; zero removes it
func (api *CartAPI) SetQuantity(c *gin.Context) {
	var payload setQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	summary, err := api.service.SetQuantity(c.Request.Context(), c.Param("productId"), *payload.Quantity)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSummary(summary))
}

// Delete /v1/cart/items/:productId
// Remove a line entirely
func (api *CartAPI) RemoveItem(c *gin.Context) {
	summary, err := api.service.SetQuantity(c.Request.Context(), c.Param("productId"), 0)
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSummary(summary))
}

// Delete /v1/cart
// Clear the cart
func (api *CartAPI) ClearCart(c *gin.Context) {
	summary, err := api.service.Clear(c.Request.Context())
	if err != nil {
		respondCartServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, carthttpmapper.FromSummary(summary))
}
