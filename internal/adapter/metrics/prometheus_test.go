package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MikeRez0/esimhub/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	p, err := NewPrometheus()
	require.NoError(t, err)

	p.OrderTransition(domain.OrderStatusPaid, domain.OrderStatusProvisioning)
	p.OrderTransition(domain.OrderStatusPaid, domain.OrderStatusProvisioning)
	p.ProvisioningAttempt("success", 120*time.Millisecond)
	p.LedgerEntryWritten(domain.LedgerEntryDebit)
	p.LedgerMismatch()
	p.IdempotencyDecision(domain.IdempotencyReplay)
	p.Reconciliation(&domain.ReconciliationReport{Scanned: 3, Provisioned: 1, Retried: 2})
	p.Reconciliation(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		p.orderTransitions.WithLabelValues("PAID", "PROVISIONING")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.provisioningAttempts.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.ledgerEntries.WithLabelValues("DEBIT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.ledgerMismatches))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.idempotency.WithLabelValues("replay")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.reconciledOrders.WithLabelValues("retried")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.reconciliationRuns))
}

func TestPrometheus_GinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	p, err := NewPrometheus()
	require.NoError(t, err)

	router := gin.New()
	router.Use(p.GinMiddleware())
	router.GET("/api/v1/orders/:id", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	router.GET("/metrics", gin.WrapH(p.Handler()))

	for _, path := range []string{"/api/v1/orders/1", "/api/v1/orders/2", "/nowhere"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(
		p.httpRequests.WithLabelValues(http.MethodGet, "/api/v1/orders/:id", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		p.httpRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "esimhub_http_requests_total"))
}
