package cartserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/sushikitos/cart-api/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/sushikitos/cart-api/internal/domains/catalog/ports"
)

// CatalogAPI wires HTTP transport with the catalog service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /v1/catalog
// List the menu
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.ListProducts(c.Request.Context())
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProductList(products))
}

// Get /v1/catalog/:productId
// Find a product by id
func (api *CatalogAPI) GetProductByID(c *gin.Context) {
	product, err := api.service.FindProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondCatalogServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromProduct(product))
}
