package cartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	shippingports "github.com/sushikitos/cart-api/internal/domains/shipping/ports"
	"github.com/sushikitos/cart-api/internal/platform/geo"
)

// ShippingAPI wires HTTP transport with the shipping service.
type ShippingAPI struct {
	service shippingports.Service
}

// NewShippingAPI creates a ShippingAPI backed by the provided service.
func NewShippingAPI(service shippingports.Service) ShippingAPI {
	return ShippingAPI{service: service}
}

type locationRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

type shippingResponse struct {
	ShippingCost decimal.Decimal `json:"shipping_cost"`
}

// Get /v1/shipping
// Current shipping cost
func (api *ShippingAPI) GetShipping(c *gin.Context) {
	c.JSON(http.StatusOK, shippingResponse{ShippingCost: api.service.CurrentCost()})
}

// Post /v1/shipping/location
// Price shipping from the customer's reported position
func (api *ShippingAPI) ReportLocation(c *gin.Context) {
	var payload locationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	coordinate := geo.Coordinate{Latitude: *payload.Latitude, Longitude: *payload.Longitude}
	cost := api.service.ResolveFromCoordinate(c.Request.Context(), coordinate)
	c.JSON(http.StatusOK, shippingResponse{ShippingCost: cost})
}

// Post /v1/shipping/denied
// Fall back to the standard cost after a denied location request
func (api *ShippingAPI) ReportDenied(c *gin.Context) {
	cost := api.service.ResolveUnavailable(c.Request.Context())
	c.JSON(http.StatusOK, shippingResponse{ShippingCost: cost})
}
