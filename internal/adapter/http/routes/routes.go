package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	_ "proposal_catalog/docs"
	"proposal_catalog/internal/adapter/http/handlers"
	"proposal_catalog/internal/adapter/persistence/repository"
	"proposal_catalog/internal/config"
	"proposal_catalog/internal/infrastructure/database"
	"proposal_catalog/internal/infrastructure/metrics"
	"proposal_catalog/internal/usecase"
	"proposal_catalog/internal/usecase/interfaces"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router serves under /v1.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	City     *handlers.CityHandler
	Client   *handlers.ClientHandler
	Product  *handlers.ProductHandler
	Proposal *handlers.ProposalHandler
}

// Run opens the stores selected by cfg and serves until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectCatalogStore(cfg)
	if err != nil {
		return err
	}
	if cfg.CatalogSource == config.SourceFixtures {
		if err := database.Migrate(db); err != nil {
			return err
		}
		n, err := repository.SeedFixtures(ctx, db)
		if err != nil {
			return fmt.Errorf("seed fixtures: %w", err)
		}
		log.Printf("[routes] fixtures seeded rows=%d", n)
	}

	proposalRepo, err := proposalRepository(ctx, cfg, db)
	if err != nil {
		return err
	}

	m := metrics.New()
	router := NewRouter(BuildHandlers(db, proposalRepo, m), m)

	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.Port), Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes] listening on %s source=%s proposals=%s", srv.Addr, cfg.CatalogSource, cfg.ProposalStore)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Printf("[routes] shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Printf("[routes] server stopped")
	return nil
}

// BuildHandlers wires repositories, use cases and handlers over one catalog
// store. A nil m records nothing.
func BuildHandlers(db *gorm.DB, proposalRepo interfaces.IProposalRepository, m *metrics.Metrics) Handlers {
	var recorder handlers.Recorder
	if m != nil {
		recorder = m
	}

	cityRepo := repository.NewCityGormRepository(db)
	clientRepo := repository.NewClientGormRepository(db)
	productRepo := repository.NewProductGormRepository(db)

	catalogUseCase := usecase.NewCatalogUseCase(cityRepo, clientRepo, productRepo)
	cityUseCase := usecase.NewCityUseCase(cityRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, cityRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, clientRepo, productRepo)

	return Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUseCase, proposalUseCase, recorder),
		City:     handlers.NewCityHandler(cityUseCase, clientUseCase),
		Client:   handlers.NewClientHandler(clientUseCase, proposalUseCase),
		Product:  handlers.NewProductHandler(productUseCase),
		Proposal: handlers.NewProposalHandler(proposalUseCase, recorder),
	}
}

func proposalRepository(ctx context.Context, cfg config.Config, db *gorm.DB) (interfaces.IProposalRepository, error) {
	if cfg.ProposalStore != config.ProposalStoreDynamo {
		return repository.NewProposalGormRepository(db), nil
	}
	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return nil, err
	}
	return repository.NewProposalDynamoRepository(ddb, cfg.ProposalsTable), nil
}

// NewRouter builds the engine. m may be nil, in which case /metrics is not served.
func NewRouter(h Handlers, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	return router
}

func setMiddlewares(router *gin.Engine, m *metrics.Metrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if m != nil {
		router.Use(m.Middleware())
	}
}
