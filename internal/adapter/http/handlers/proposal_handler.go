package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	request "proposal_catalog/internal/adapter/http/dto/request"
	response "proposal_catalog/internal/adapter/http/dto/response"
	"proposal_catalog/internal/domain/console"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/filtering"
	"proposal_catalog/internal/usecase"
	"proposal_catalog/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidProposalQuery   = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_QUERY", "Invalid proposal filters", http.StatusBadRequest)
	errClientSelectionMissing = pkg.NewDomainErrorSimple("CLIENT_REQUIRED", "Select a client before creating a proposal", http.StatusBadRequest)
)

// ProposalHandler serves the proposals section.
type ProposalHandler struct {
	usecase  usecase.IProposalUseCase
	recorder Recorder
}

func NewProposalHandler(uc usecase.IProposalUseCase, recorder Recorder) *ProposalHandler {
	return &ProposalHandler{usecase: uc, recorder: orNop(recorder)}
}

// CreateProposal prices and stores a pending proposal for the selected client.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	state := console.Reduce(console.Initial(), console.SelectClient{ClientID: in.ClientID})
	if !state.CanCreateProposal() {
		c.JSON(errClientSelectionMissing.HTTPStatus, errClientSelectionMissing.ToHTTPError())
		return
	}

	proposal, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.recorder.ProposalCreated()
	c.JSON(http.StatusCreated, response.FromProposal(proposal))
}

// ListProposals filters by ?start_date_from and ?client_name and returns one
// page of 30. Changing a filter always lands on page 1; a page past the end
// is clamped to the last one.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	var query request.ProposalListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidProposalQuery.HTTPStatus, errInvalidProposalQuery.ToHTTPError())
		return
	}

	criteria := query.Criteria()
	state := console.Reduce(console.Initial(),
		console.SwitchTab{Tab: console.TabProposals},
		console.SetDateFilter{Date: criteria.StartDateFrom},
		console.SetSearch{Term: criteria.ClientName},
	)
	if query.Page != 0 {
		state = console.Reduce(state, console.GoToPage{Page: query.Page})
	}

	ctx := c.Request.Context()
	page, err := h.list(ctx, state)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if page.TotalPages > 0 && state.Page > page.TotalPages {
		state = console.Reduce(state, console.GoToPage{Page: state.Page, TotalPages: page.TotalPages})
		if page, err = h.list(ctx, state); err != nil {
			appErr := mapProposalError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusOK, response.FromProposalPage(page))
}

func (h *ProposalHandler) list(ctx context.Context, s console.State) (filtering.Page, error) {
	return h.usecase.List(ctx, filtering.Criteria{StartDateFrom: s.DateFilter, ClientName: s.Search}, s.Page)
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	proposal, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func (h *ProposalHandler) ApproveProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Approve)
}

func (h *ProposalHandler) RejectProposal(c *gin.Context) {
	h.patchProposalStatus(c, h.usecase.Reject)
}

func (h *ProposalHandler) patchProposalStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Proposal, error),
) {
	proposal, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.recorder.ProposalDecided(string(proposal.Status))
	c.JSON(http.StatusOK, response.FromProposal(proposal))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientRequired):
		return errClientSelectionMissing
	case errors.Is(err, usecase.ErrInvalidProposalID), errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidStartDate),
		errors.Is(err, usecase.ErrInvalidAddOn):
		return pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDateFilter), errors.Is(err, usecase.ErrInvalidProposalPageNumber):
		return errInvalidProposalQuery
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalAlreadyDecided):
		return pkg.NewDomainErrorSimple("PROPOSAL_ALREADY_DECIDED", "Proposal is no longer pending", http.StatusConflict)
	default:
		log.Printf("[proposal][handler] unexpected error: %v", err)
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
