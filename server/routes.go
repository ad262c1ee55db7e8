package cartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route binds an HTTP method and path pattern to a handler.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a collection of routes.
type Routes []Route

// ApiHandleFunctions holds the API handlers registered on the router.
type ApiHandleFunctions struct {
	CartAPI     CartAPI
	CatalogAPI  CatalogAPI
	ShippingAPI ShippingAPI
	OrderAPI    OrderAPI
}

// NewRouter returns a new gin engine with all routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on an existing engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = defaultHandler
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func defaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{})
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		{
			"GetCart",
			http.MethodGet,
			"/v1/cart",
			handleFunctions.CartAPI.GetCart,
		},
		{
			"AddItem",
			http.MethodPost,
			"/v1/cart/items",
			handleFunctions.CartAPI.AddItem,
		},
		{
			"SetQuantity",
			http.MethodPut,
			"/v1/cart/items/:productId",
			handleFunctions.CartAPI.SetQuantity,
		},
		{
			"RemoveItem",
			http.MethodDelete,
			"/v1/cart/items/:productId",
			handleFunctions.CartAPI.RemoveItem,
		},
		{
			"ClearCart",
			http.MethodDelete,
			"/v1/cart",
			handleFunctions.CartAPI.ClearCart,
		},
		{
			"ListProducts",
			http.MethodGet,
			"/v1/catalog",
			handleFunctions.CatalogAPI.ListProducts,
		},
		{
			"GetProductByID",
			http.MethodGet,
			"/v1/catalog/:productId",
			handleFunctions.CatalogAPI.GetProductByID,
		},
		{
			"GetShipping",
			http.MethodGet,
			"/v1/shipping",
			handleFunctions.ShippingAPI.GetShipping,
		},
		{
			"ReportLocation",
			http.MethodPost,
			"/v1/shipping/location",
			handleFunctions.ShippingAPI.ReportLocation,
		},
		{
			"ReportDenied",
			http.MethodPost,
			"/v1/shipping/denied",
			handleFunctions.ShippingAPI.ReportDenied,
		},
		{
			"SubmitOrder",
			http.MethodPost,
			"/v1/orders",
			handleFunctions.OrderAPI.SubmitOrder,
		},
	}
}
