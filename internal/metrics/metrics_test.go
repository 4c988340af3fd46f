package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSale(t *testing.T) {
	before := testutil.ToFloat64(salesRegistered.WithLabelValues("manual"))

	ObserveSale("manual")

	assert.Equal(t, before+1, testutil.ToFloat64(salesRegistered.WithLabelValues("manual")))
}

func TestSetLedgerAnomalies(t *testing.T) {
	SetLedgerAnomalies(3)

	assert.Equal(t, float64(3), testutil.ToFloat64(ledgerAnomalies))
}

func TestHandler(t *testing.T) {
	ObserveDraw("winner")
	ObserveRegistrationFailure("already_sold")
	ObserveSnapshotRead("store")

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "raffle_draw_draws_total")
	assert.Contains(t, body, "raffle_sales_registration_failures_total")
	assert.Contains(t, body, "raffle_ledger_snapshot_reads_total")
}
