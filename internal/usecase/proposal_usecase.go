package usecase

import (
	"context"
	"errors"
	"log"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/filtering"
	"proposal_catalog/internal/domain/pricing"
	"proposal_catalog/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProposalNotFound          = errors.New("proposal not found")
	ErrInvalidProposalID         = errors.New("invalid proposal id")
	ErrClientRequired            = errors.New("client is required")
	ErrInvalidQuantity           = errors.New("invalid quantity")
	ErrInvalidStartDate          = errors.New("invalid start date")
	ErrInvalidDateFilter         = errors.New("invalid start date filter")
	ErrInvalidAddOn              = errors.New("add-on does not belong to product")
	ErrProposalAlreadyDecided    = errors.New("proposal is no longer pending")
	ErrInvalidProposalPageNumber = errors.New("invalid page number")
)

// ProposalInput is the create-proposal command.
type ProposalInput struct {
	ClientID         string
	ProductID        string
	Quantity         int
	StartDate        string
	SelectedAddOnIDs []string
	Notes            string
}

// IProposalUseCase exposes proposal operations.
//
//   - Create prices the selection and stores a pending proposal.
//   - List filters by start date and client name, then paginates.
//   - Approve/Reject decide a pending proposal.

type IProposalUseCase interface {
	Create(ctx context.Context, in ProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context, criteria filtering.Criteria, page int) (filtering.Page, error)
	Approve(ctx context.Context, id string) (entities.Proposal, error)
	Reject(ctx context.Context, id string) (entities.Proposal, error)
	CountByClient(ctx context.Context) (map[string]int, error)
}

type ProposalUseCase struct {
	repo        interfaces.IProposalRepository
	clientRepo  interfaces.IClientRepository
	productRepo interfaces.IProductRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, clientRepo interfaces.IClientRepository, productRepo interfaces.IProductRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, clientRepo: clientRepo, productRepo: productRepo}
}

func (u *ProposalUseCase) Create(ctx context.Context, in ProposalInput) (entities.Proposal, error) {
	clientID := strings.TrimSpace(in.ClientID)
	if clientID == "" {
		return entities.Proposal{}, ErrClientRequired
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return entities.Proposal{}, ErrInvalidProductID
	}
	if in.Quantity < 1 {
		return entities.Proposal{}, ErrInvalidQuantity
	}
	startDate := strings.TrimSpace(in.StartDate)
	if !isISODate(startDate) {
		return entities.Proposal{}, ErrInvalidStartDate
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if client.ID == "" {
		return entities.Proposal{}, ErrClientNotFound
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if product.ID == "" {
		return entities.Proposal{}, ErrProductNotFound
	}

	addOnIDs := dedupe(in.SelectedAddOnIDs)
	if unknown := pricing.UnknownAddOns(product, addOnIDs); len(unknown) > 0 {
		log.Printf("[proposal][usecase] rejected add-ons product_id=%s unknown=%v", productID, unknown)
		return entities.Proposal{}, ErrInvalidAddOn
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:               uuid.NewString(),
		ClientID:         client.ID,
		ProductID:        product.ID,
		Quantity:         in.Quantity,
		StartDate:        startDate,
		SelectedAddOnIDs: addOnIDs,
		Total:            pricing.ForProduct(product, in.Quantity, addOnIDs),
		Status:           entities.ProposalStatusPendente,
		Notes:            strings.TrimSpace(in.Notes),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[proposal][usecase] create failed client_id=%s product_id=%s err=%v", clientID, productID, err)
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] created proposal_id=%s client_id=%s total=%.2f", created.ID, created.ClientID, created.Total)
	return created, nil
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// List loads proposals and clients, then filters and paginates in memory.
func (u *ProposalUseCase) List(ctx context.Context, criteria filtering.Criteria, page int) (filtering.Page, error) {
	criteria.StartDateFrom = strings.TrimSpace(criteria.StartDateFrom)
	if criteria.StartDateFrom != "" && !isISODate(criteria.StartDateFrom) {
		return filtering.Page{}, ErrInvalidDateFilter
	}
	criteria.ClientName = strings.TrimSpace(criteria.ClientName)
	if page < 1 {
		return filtering.Page{}, ErrInvalidProposalPageNumber
	}

	var (
		proposals []entities.Proposal
		clients   []entities.Client
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		proposals, err = u.repo.List(gctx)
		return err
	})
	if criteria.ClientName != "" {
		g.Go(func() error {
			var err error
			clients, err = u.clientRepo.List(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[proposal][usecase] list failed err=%v", err)
		return filtering.Page{}, err
	}

	filtered := filtering.Filter(proposals, filtering.Clients(clients), criteria)
	return filtering.Paginate(filtered, page, filtering.PageSize), nil
}

func (u *ProposalUseCase) Approve(ctx context.Context, id string) (entities.Proposal, error) {
	return u.decide(ctx, id, entities.ProposalStatusAprovada)
}

func (u *ProposalUseCase) Reject(ctx context.Context, id string) (entities.Proposal, error) {
	return u.decide(ctx, id, entities.ProposalStatusRejeitada)
}

func (u *ProposalUseCase) decide(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.Status != entities.ProposalStatusPendente {
		return entities.Proposal{}, ErrProposalAlreadyDecided
	}

	updated, err := u.repo.UpdateStatusByID(ctx, current.ID, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	log.Printf("[proposal][usecase] status changed proposal_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *ProposalUseCase) CountByClient(ctx context.Context) (map[string]int, error) {
	proposals, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filtering.CountByClient(proposals), nil
}

func isISODate(s string) bool {
	if len(s) != len(entities.StartDateLayout) {
		return false
	}
	_, err := time.Parse(entities.StartDateLayout, s)
	return err == nil
}

// dedupe trims ids, drops blanks and repeats, and keeps first-seen order.
func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
