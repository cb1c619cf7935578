package handlers

import (
	"errors"
	"log"
	"net/http"
	response "proposal_catalog/internal/adapter/http/dto/response"
	"proposal_catalog/internal/usecase"
	"proposal_catalog/pkg"

	"github.com/gin-gonic/gin"
)

var errCatalogUnavailable = pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Could not load the catalog, try again later", http.StatusServiceUnavailable)

// CatalogHandler returns the reference data the console renders on start.
type CatalogHandler struct {
	usecase         usecase.ICatalogUseCase
	proposalUseCase usecase.IProposalUseCase
	recorder        Recorder
}

func NewCatalogHandler(uc usecase.ICatalogUseCase, proposalUC usecase.IProposalUseCase, recorder Recorder) *CatalogHandler {
	return &CatalogHandler{usecase: uc, proposalUseCase: proposalUC, recorder: orNop(recorder)}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	ctx := c.Request.Context()
	catalog, err := h.usecase.Load(ctx)
	if err != nil {
		h.recorder.CatalogLoadFailed()
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	counts, err := h.proposalUseCase.CountByClient(ctx)
	if err != nil {
		h.recorder.CatalogLoadFailed()
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(catalog, counts))
}

// mapCatalogError never exposes the cause; remote failures are logged only.
func mapCatalogError(err error) *pkg.AppError {
	if !errors.Is(err, usecase.ErrCatalogUnavailable) {
		log.Printf("[catalog][handler] load failed: %v", err)
	}
	return errCatalogUnavailable
}
