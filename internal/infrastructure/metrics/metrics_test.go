package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/cities/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/v1/cities/1", "/v1/cities/2", "/nope"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("/v1/cities/:id", "GET", "404")); got != 2 {
		t.Fatalf("expected 2 route hits, got %v", got)
	}
	if got := testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched hit, got %v", got)
	}
}

func TestDomainCounters(t *testing.T) {
	m := New()
	m.ProposalCreated()
	m.ProposalCreated()
	m.ProposalDecided("aprovada")
	m.CatalogLoadFailed()

	if got := testutil.ToFloat64(m.proposalsCreated); got != 2 {
		t.Fatalf("expected 2 created, got %v", got)
	}
	if got := testutil.ToFloat64(m.proposalDecisions.WithLabelValues("aprovada")); got != 1 {
		t.Fatalf("expected 1 approval, got %v", got)
	}

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(w.Body.String(), "proposal_catalog_catalog_load_failures_total 1") {
		t.Fatalf("expected exposition to include catalog failures:\n%s", w.Body.String())
	}
}
