package handlers

import (
	"errors"
	"log"
	"net/http"
	request "proposal_catalog/internal/adapter/http/dto/request"
	response "proposal_catalog/internal/adapter/http/dto/response"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/usecase"
	"proposal_catalog/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCityPayload = pkg.NewDomainErrorSimple("INVALID_CITY_INPUT", "Invalid city payload", http.StatusBadRequest)
)

// CityHandler serves the cities section. Listed cities carry their client count.
type CityHandler struct {
	usecase       usecase.ICityUseCase
	clientUseCase usecase.IClientUseCase
}

func NewCityHandler(uc usecase.ICityUseCase, clientUC usecase.IClientUseCase) *CityHandler {
	return &CityHandler{usecase: uc, clientUseCase: clientUC}
}

func (h *CityHandler) CreateCity(c *gin.Context) {
	var payload request.CityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCityPayload.HTTPStatus, errInvalidCityPayload.ToHTTPError())
		return
	}

	city, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.State)
	if err != nil {
		appErr := mapCityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCity(city, 0))
}

func (h *CityHandler) ListCities(c *gin.Context) {
	ctx := c.Request.Context()
	cities, err := h.usecase.List(ctx)
	if err != nil {
		appErr := mapCityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	clients, err := h.clientUseCase.List(ctx, nil)
	if err != nil {
		appErr := mapCityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	counts := entities.Catalog{Cities: cities, Clients: clients}.ClientCountByCity()
	out := make([]response.CityResponse, 0, len(cities))
	for _, city := range cities {
		out = append(out, response.FromCity(city, counts[city.ID]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CityHandler) GetCity(c *gin.Context) {
	ctx := c.Request.Context()
	city, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapCityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cityID := city.ID
	clients, err := h.clientUseCase.List(ctx, &cityID)
	if err != nil {
		appErr := mapCityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCity(city, len(clients)))
}

func mapCityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCityID), errors.Is(err, usecase.ErrInvalidCityName), errors.Is(err, usecase.ErrInvalidCityState):
		return pkg.NewDomainErrorSimple("INVALID_CITY_INPUT", "Invalid city payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCityNotFound):
		return pkg.NewDomainErrorSimple("CITY_NOT_FOUND", "City not found", http.StatusNotFound)
	default:
		log.Printf("[city][handler] unexpected error: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
