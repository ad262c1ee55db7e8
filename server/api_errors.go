package cartserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartapp "github.com/sushikitos/cart-api/internal/domains/cart/application"
	catalogports "github.com/sushikitos/cart-api/internal/domains/catalog/ports"
	ordersapp "github.com/sushikitos/cart-api/internal/domains/orders/application"
	apierrors "github.com/sushikitos/cart-api/internal/shared/errors"
)

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	apierrors.Respond(c, problem)
}

// respondError returns RFC 7807 responses for plain errors.
func respondError(c *gin.Context, status int, err error) {
	if err == nil {
		return
	}
	var problem apierrors.ProblemDetail
	switch status {
	case http.StatusBadRequest:
		problem = apierrors.ErrBadRequest.WithDetail(err.Error())
	case http.StatusNotFound:
		problem = apierrors.ErrNotFound.WithDetail(err.Error())
	case http.StatusUnprocessableEntity:
		problem = apierrors.ErrUnprocessable.WithDetail(err.Error())
	default:
		problem = apierrors.ErrInternal.WithDetail(err.Error())
	}
	respondProblem(c, problem)
}

// respondCartServiceError maps cart application errors onto problems.
func respondCartServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cartapp.ErrUnknownProduct):
		respondProblem(c, apierrors.NewNotFoundProblem("product", c.Param("productId")).WithDetail(err.Error()))
	case errors.Is(err, cartapp.ErrStorageFailure):
		respondProblem(c, apierrors.ErrStorage.WithDetail(err.Error()))
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}

// respondCatalogServiceError maps catalog errors onto problems.
func respondCatalogServiceError(c *gin.Context, err error) {
	if errors.Is(err, catalogports.ErrNotFound) {
		respondProblem(c, apierrors.NewNotFoundProblem("product", c.Param("productId")))
		return
	}
	respondError(c, http.StatusInternalServerError, err)
}

// respondOrderServiceError maps order submission errors onto problems.
func respondOrderServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ordersapp.ErrInvalidCustomer), errors.Is(err, ordersapp.ErrEmptyCart):
		respondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, cartapp.ErrStorageFailure):
		respondProblem(c, apierrors.ErrStorage.WithDetail(err.Error()))
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
