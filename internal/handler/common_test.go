package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"raffle-tracker/config"
	"raffle-tracker/internal/model"
	"raffle-tracker/internal/repository"
	"raffle-tracker/internal/service"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zaptest"
)

var (
	InvalidJSON = `{"invalid": json}`
)

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	var body *bytes.Buffer
	if raw, ok := data.(string); ok {
		body = bytes.NewBufferString(raw)
	} else {
		jsonData, err := json.Marshal(data)
		if err != nil {
			jsonData = []byte("")
		}
		body = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

// reportServiceWith 記憶體帳本上的真實 ReportService
func reportServiceWith(t *testing.T, rows ...model.LedgerRow) service.ReportService {
	t.Helper()
	ledger := repository.NewMemoryLedgerRepository(config.DefaultSheet)
	for _, row := range rows {
		if err := ledger.AppendRow(t.Context(), row); err != nil {
			t.Fatalf("seed ledger: %v", err)
		}
	}
	cfg := config.DefaultRaffleConfig()
	cfg.Sellers = []string{"A", "B"}
	loader := service.NewSnapshotLoader(ledger, nil, zaptest.NewLogger(t))
	return service.NewReportService(loader, cfg, zaptest.NewLogger(t))
}
