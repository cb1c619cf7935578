package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"testing"

	"proposal_catalog/internal/adapter/http/handlers/mocks"
	"proposal_catalog/internal/domain/entities"
	"proposal_catalog/internal/domain/filtering"
	"proposal_catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func proposals(n int) []entities.Proposal {
	out := make([]entities.Proposal, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Proposal{ID: "pr-" + strconv.Itoa(i), ClientID: "c1", Status: entities.ProposalStatusPendente})
	}
	return out
}

func TestProposalHandler_CreateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no client selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rec := &countingRecorder{}
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl), rec)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		w := serve(r, http.MethodPost, "/v1/proposals", `{"product_id":"1","quantity":1,"start_date":"2024-03-01"}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "CLIENT_REQUIRED" {
			t.Fatalf("expected 400 CLIENT_REQUIRED, got %d %s", w.Code, w.Body.String())
		}
		if rec.created != 0 {
			t.Fatalf("expected no metric")
		}
	})

	t.Run("add-on from another product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, usecase.ErrInvalidAddOn)

		w := serve(r, http.MethodPost, "/v1/proposals", `{"client_id":"c1","product_id":"1","quantity":1,"start_date":"2024-03-01","selected_add_on_ids":["4"]}`)
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_PROPOSAL_INPUT" {
			t.Fatalf("expected 400 INVALID_PROPOSAL_INPUT, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		rec := &countingRecorder{}
		h := NewProposalHandler(uc, rec)

		r := gin.New()
		r.POST("/v1/proposals", h.CreateProposal)

		want := usecase.ProposalInput{ClientID: "c1", ProductID: "1", Quantity: 2, StartDate: "2024-03-01", SelectedAddOnIDs: []string{"1", "3"}, Notes: "urgente"}
		uc.EXPECT().Create(gomock.Any(), want).Return(entities.Proposal{
			ID: "pr-1", ClientID: "c1", ProductID: "1", Quantity: 2, StartDate: "2024-03-01",
			SelectedAddOnIDs: []string{"1", "3"}, Total: 6600, Status: entities.ProposalStatusPendente,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/proposals", `{"client_id":"c1","product_id":"1","quantity":2,"start_date":"2024-03-01","selected_add_on_ids":["1","3"],"notes":"urgente"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["total"] != float64(6600) || body["status"] != "pendente" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if rec.created != 1 {
			t.Fatalf("expected created metric, got %d", rec.created)
		}
	})
}

func TestProposalHandler_ListProposals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters and page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		criteria := filtering.Criteria{StartDateFrom: "2024-01-01", ClientName: "acme"}
		uc.EXPECT().List(gomock.Any(), criteria, 2).Return(filtering.Paginate(proposals(65), 2, filtering.PageSize), nil)

		w := serve(r, http.MethodGet, "/v1/proposals?start_date_from=2024-01-01&client_name=acme&page=2", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		var body map[string]any
		decodeBody(t, w, &body)
		items, _ := body["items"].([]any)
		if len(items) != 30 || body["page"] != float64(2) || body["total_pages"] != float64(3) || body["has_prev"] != true || body["has_next"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("defaults to first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		uc.EXPECT().List(gomock.Any(), filtering.Criteria{}, 1).Return(filtering.Paginate(nil, 1, filtering.PageSize), nil)

		w := serve(r, http.MethodGet, "/v1/proposals", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		items, _ := body["items"].([]any)
		if items == nil || len(items) != 0 || body["total_pages"] != float64(0) || body["has_next"] != false {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("page past the end is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		all := proposals(65)
		gomock.InOrder(
			uc.EXPECT().List(gomock.Any(), filtering.Criteria{}, 9).Return(filtering.Paginate(all, 9, filtering.PageSize), nil),
			uc.EXPECT().List(gomock.Any(), filtering.Criteria{}, 3).Return(filtering.Paginate(all, 3, filtering.PageSize), nil),
		)

		w := serve(r, http.MethodGet, "/v1/proposals?page=9", "")
		var body map[string]any
		decodeBody(t, w, &body)
		items, _ := body["items"].([]any)
		if w.Code != http.StatusOK || body["page"] != float64(3) || len(items) != 5 || body["has_next"] != false {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("non numeric page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewProposalHandler(mocks.NewMockIProposalUseCase(ctrl), nil)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		w := serve(r, http.MethodGet, "/v1/proposals?page=abc", "")
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_PROPOSAL_QUERY" {
			t.Fatalf("expected 400 INVALID_PROPOSAL_QUERY, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("invalid date filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/proposals", h.ListProposals)

		uc.EXPECT().List(gomock.Any(), filtering.Criteria{StartDateFrom: "01/03/2024"}, 1).Return(filtering.Page{}, usecase.ErrInvalidDateFilter)

		w := serve(r, http.MethodGet, "/v1/proposals?start_date_from=01/03/2024", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProposalHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		rec := &countingRecorder{}
		h := NewProposalHandler(uc, rec)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/approve", h.ApproveProposal)

		uc.EXPECT().Approve(gomock.Any(), "pr-1").Return(entities.Proposal{ID: "pr-1", Status: entities.ProposalStatusAprovada}, nil)

		w := serve(r, http.MethodPatch, "/v1/proposals/pr-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if len(rec.decided) != 1 || rec.decided[0] != "aprovada" {
			t.Fatalf("unexpected decisions: %v", rec.decided)
		}
	})

	t.Run("reject already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.PATCH("/v1/proposals/:id/reject", h.RejectProposal)

		uc.EXPECT().Reject(gomock.Any(), "pr-1").Return(entities.Proposal{}, usecase.ErrProposalAlreadyDecided)

		w := serve(r, http.MethodPatch, "/v1/proposals/pr-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("get not found and internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)

		r := gin.New()
		r.GET("/v1/proposals/:id", h.GetProposal)

		uc.EXPECT().GetByID(gomock.Any(), "x").Return(entities.Proposal{}, usecase.ErrProposalNotFound)
		uc.EXPECT().GetByID(gomock.Any(), "y").Return(entities.Proposal{}, errors.New("dial tcp: timeout"))

		if w := serve(r, http.MethodGet, "/v1/proposals/x", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		w := serve(r, http.MethodGet, "/v1/proposals/y", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		decodeBody(t, w, &body)
		if body["message"] != "An internal error occurred" {
			t.Fatalf("cause leaked: %s", w.Body.String())
		}
	})
}
