package handlers

import (
	"errors"
	"log"
	"net/http"
	request "proposal_catalog/internal/adapter/http/dto/request"
	response "proposal_catalog/internal/adapter/http/dto/response"
	"proposal_catalog/internal/domain/console"
	"proposal_catalog/internal/usecase"
	"proposal_catalog/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
	errCitySelectionMissing = pkg.NewDomainErrorSimple("CITY_REQUIRED", "Select a city before registering a client", http.StatusBadRequest)
)

// ClientHandler serves the clients section. Listed clients carry their proposal count.
type ClientHandler struct {
	usecase         usecase.IClientUseCase
	proposalUseCase usecase.IProposalUseCase
}

func NewClientHandler(uc usecase.IClientUseCase, proposalUC usecase.IProposalUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc, proposalUseCase: proposalUC}
}

// CreateClient registers a client in the selected city.
//
// The selection travels as city_id; without it the console would keep the
// "new client" action disabled, so the request is refused before reaching the use case.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	state := console.Reduce(console.Initial(), console.SelectCity{CityID: strings.TrimSpace(payload.CityID)})
	if !state.CanCreateClient() {
		c.JSON(errCitySelectionMissing.HTTPStatus, errCitySelectionMissing.ToHTTPError())
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client, 0))
}

// ListClients returns every client, or only those of ?city_id.
func (h *ClientHandler) ListClients(c *gin.Context) {
	ctx := c.Request.Context()

	var cityID *string
	if v, ok := c.GetQuery("city_id"); ok {
		cityID = &v
	}

	clients, err := h.usecase.List(ctx, cityID)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	counts, err := h.proposalUseCase.CountByClient(ctx)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.ClientResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, response.FromClient(client, counts[client.ID]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	ctx := c.Request.Context()
	client, err := h.usecase.GetByID(ctx, c.Param("id"))
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	counts, err := h.proposalUseCase.CountByClient(ctx)
	if err != nil {
		appErr := mapClientError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client, counts[client.ID]))
}

func mapClientError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID), errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrInvalidClientEmail), errors.Is(err, usecase.ErrInvalidClientPhone),
		errors.Is(err, usecase.ErrInvalidCityID):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCityRequired):
		return errCitySelectionMissing
	case errors.Is(err, usecase.ErrCityNotFound):
		return pkg.NewDomainErrorSimple("CITY_NOT_FOUND", "City not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	default:
		log.Printf("[client][handler] unexpected error: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
