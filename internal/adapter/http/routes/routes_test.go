package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"proposal_catalog/internal/adapter/persistence/repository"
	"proposal_catalog/internal/infrastructure/database"
	"proposal_catalog/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestServerWithMetrics(t, metrics.New())
}

func newTestServerWithMetrics(t *testing.T, m *metrics.Metrics) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	_, err = repository.SeedFixtures(context.Background(), db)
	require.NoError(t, err)

	return NewRouter(BuildHandlers(db, repository.NewProposalGormRepository(db), m), m)
}

func call(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if strings.HasPrefix(w.Body.String(), "{") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestProposalFlow(t *testing.T) {
	r := newTestServer(t)

	code, body := call(t, r, http.MethodGet, "/v1/ping", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "pong", body["message"])

	code, catalog := call(t, r, http.MethodGet, "/v1/catalog", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, catalog["cities"], 2)
	assert.Len(t, catalog["products"], 2)

	code, city := call(t, r, http.MethodPost, "/v1/cities", map[string]any{"name": "Campinas", "state": "sp"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "SP", city["state"])

	code, _ = call(t, r, http.MethodPost, "/v1/clients", map[string]any{"name": "Acme", "email": "contato@acme.com", "phone": "11 4000-0000"})
	require.Equal(t, http.StatusBadRequest, code)

	code, client := call(t, r, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Acme", "email": "contato@acme.com", "phone": "11 4000-0000", "city_id": city["id"],
	})
	require.Equal(t, http.StatusCreated, code)

	code, quote := call(t, r, http.MethodPost, "/v1/pricing/quote", map[string]any{"product_id": "1", "quantity": 2, "add_on_ids": []string{"1", "3"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(6600), quote["total"])

	code, quote = call(t, r, http.MethodPost, "/v1/pricing/quote", map[string]any{"product_id": "1", "quantity": 2, "add_on_ids": []string{"1", "1"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(6000), quote["total"], "a repeated add-on is priced once")

	code, _ = call(t, r, http.MethodPost, "/v1/proposals", map[string]any{
		"client_id": client["id"], "product_id": "1", "quantity": 1, "start_date": "2024-03-01", "selected_add_on_ids": []string{"4"},
	})
	require.Equal(t, http.StatusBadRequest, code, "add-on of another product must be refused")

	code, proposal := call(t, r, http.MethodPost, "/v1/proposals", map[string]any{
		"client_id": client["id"], "product_id": "1", "quantity": 2, "start_date": "2024-03-01", "selected_add_on_ids": []string{"1", "3"},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(6600), proposal["total"])
	assert.Equal(t, "pendente", proposal["status"])

	code, page := call(t, r, http.MethodGet, "/v1/proposals?client_name=acm&start_date_from=2024-01-01", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), page["total_items"])

	code, page = call(t, r, http.MethodGet, "/v1/proposals?start_date_from=2024-06-01", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), page["total_items"])

	id := proposal["id"].(string)
	code, approved := call(t, r, http.MethodPatch, "/v1/proposals/"+id+"/approve", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "aprovada", approved["status"])

	code, _ = call(t, r, http.MethodPatch, "/v1/proposals/"+id+"/reject", nil)
	assert.Equal(t, http.StatusConflict, code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "proposal_catalog_proposals_created_total 1")
	assert.Contains(t, w.Body.String(), `proposal_catalog_proposal_decisions_total{status="aprovada"} 1`)
}

func TestProductWithAddOns(t *testing.T) {
	r := newTestServer(t)

	code, product := call(t, r, http.MethodPost, "/v1/products", map[string]any{
		"name": "Aplicativo", "base_price": 8000, "description": "App mobile",
		"add_ons": []map[string]any{{"name": "Push", "additional_price": 700}},
	})
	require.Equal(t, http.StatusCreated, code)
	id := product["id"].(string)

	code, _ = call(t, r, http.MethodPost, "/v1/products/"+id+"/add-ons", map[string]any{"name": "Analytics", "additional_price": 900})
	require.Equal(t, http.StatusCreated, code)

	code, got := call(t, r, http.MethodGet, "/v1/products/"+id, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, got["add_ons"], 2)

	code, _ = call(t, r, http.MethodGet, "/v1/products/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestNewRouter_WithoutMetrics(t *testing.T) {
	r := newTestServerWithMetrics(t, nil)

	code, client := call(t, r, http.MethodPost, "/v1/clients", map[string]any{
		"name": "Acme", "email": "contato@acme.com", "phone": "11 4000-0000", "city_id": "1",
	})
	require.Equal(t, http.StatusCreated, code)

	code, proposal := call(t, r, http.MethodPost, "/v1/proposals", map[string]any{
		"client_id": client["id"], "product_id": "1", "quantity": 2, "start_date": "2024-03-01", "selected_add_on_ids": []string{"1", "1"},
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(6000), proposal["total"])

	code, _ = call(t, r, http.MethodPatch, "/v1/proposals/"+proposal["id"].(string)+"/approve", nil)
	require.Equal(t, http.StatusOK, code)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
