package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathCities    = "/cities"
	PathClients   = "/clients"
	PathProducts  = "/products"
	PathPricing   = "/pricing"
	PathProposals = "/proposals"
)

func addCatalogRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET(PathCatalog, h.Catalog.GetCatalog)

	cities := rg.Group(PathCities)
	{
		cities.GET("", h.City.ListCities)
		cities.POST("", h.City.CreateCity)
		cities.GET("/:id", h.City.GetCity)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Client.ListClients)
		clients.POST("", h.Client.CreateClient)
		clients.GET("/:id", h.Client.GetClient)
	}

	products := rg.Group(PathProducts)
	{
		products.GET("", h.Product.ListProducts)
		products.POST("", h.Product.CreateProduct)
		products.GET("/:id", h.Product.GetProduct)
		products.POST("/:id/add-ons", h.Product.AddAddOn)
	}

	rg.POST(PathPricing+"/quote", h.Product.Quote)

	proposals := rg.Group(PathProposals)
	{
		proposals.GET("", h.Proposal.ListProposals)
		proposals.POST("", h.Proposal.CreateProposal)
		proposals.GET("/:id", h.Proposal.GetProposal)
		proposals.PATCH("/:id/approve", h.Proposal.ApproveProposal)
		proposals.PATCH("/:id/reject", h.Proposal.RejectProposal)
	}
}
