package cartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ordersdomain "github.com/sushikitos/cart-api/internal/domains/orders/domain"
	ordersports "github.com/sushikitos/cart-api/internal/domains/orders/ports"
)

// OrderAPI wires HTTP transport with the order submission service.
type OrderAPI struct {
	service ordersports.Service
}

// NewOrderAPI creates an OrderAPI backed by the provided service.
func NewOrderAPI(service ordersports.Service) OrderAPI {
	return OrderAPI{service: service}
}

type submitOrderRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type submitOrderResponse struct {
	OrderID string `json:"order_id"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

// Post /v1/orders
// Finalize the cart into an outbound order message
func (api *OrderAPI) SubmitOrder(c *gin.Context) {
	var payload submitOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	receipt, err := api.service.Submit(c.Request.Context(), ordersdomain.Customer{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Address: payload.Address,
		Notes:   payload.Notes,
	})
	if err != nil {
		respondOrderServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submitOrderResponse{
		OrderID: receipt.OrderID,
		Link:    receipt.Link,
		Message: receipt.Message,
	})
}
