package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.Joins.WithLabelValues("ok").Inc()
	if got := testutil.ToFloat64(a.Joins.WithLabelValues("ok")); got != 1 {
		t.Errorf("expected 1 join on a, got %v", got)
	}
	if got := testutil.ToFloat64(b.Joins.WithLabelValues("ok")); got != 0 {
		t.Errorf("expected 0 joins on b, got %v", got)
	}
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.WalletTxs.WithLabelValues("deposit").Add(2)
	m.WSClients.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`arena_wallet_transactions_total{type="deposit"} 2`,
		"arena_ws_clients 3",
		"go_goroutines",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("expected %q in metrics output", want)
		}
	}
}

func TestNilMetrics_HelpersAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveJoin("ok")
	m.ObserveWalletTx("deposit")
	m.ObserveStatusTransition("live")
	m.ObserveCacheLookup("hit")
	m.ObserveEventPublish("ok")
	m.SetWSClients(2)
	m.ObserveHTTP("GET", 200)
}

func TestObserveHTTP(t *testing.T) {
	m := New()
	m.ObserveHTTP("POST", 201)
	if got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "201")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}
