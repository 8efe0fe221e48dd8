package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func withTestServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	origURL, origTimeout := baseURL, timeout
	baseURL = server.URL
	timeout = 2 * time.Second
	t.Cleanup(func() {
		baseURL = origURL
		timeout = origTimeout
	})
}

func TestRunAccrualPrintsResult(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accruals/advances/run" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["date"] != "2024-01-10" {
			t.Errorf("expected date in payload, got %v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"kind":           "advance",
			"date":           "2024-01-10",
			"processed":      2,
			"total_interest": "9.86",
		})
	})

	out := captureOutput(t, func() {
		runAccrual("advances", "2024-01-10")
	})

	if !strings.Contains(out, "Processed: 2") || !strings.Contains(out, "Total interest: 9.86") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestShowLiquidityPrintsStatus(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("horizon_days") != "7" {
			t.Errorf("expected horizon_days=7, got %s", r.URL.RawQuery)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"window_start":        "2024-05-06",
			"window_end":          "2024-05-13",
			"total_balance":       "3000.00",
			"total_disbursements": "5000.00",
			"net_need":            "2000.00",
			"status":              "borrowing_required",
		})
	})

	out := captureOutput(t, func() {
		showLiquidity(7)
	})

	if !strings.Contains(out, "Status: borrowing_required") || !strings.Contains(out, "Net need: 2000.00") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestShowMarginPrintsReport(t *testing.T) {
	withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/css-1/margin") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"css_code":               "CSS-NORD",
			"css_name":               "CSS Nord",
			"period_start":           "2024-01-01",
			"period_end":             "2024-01-30",
			"period_days":            30,
			"interest_revenue":       "369.90",
			"estimated_funding_cost": "246.58",
			"net_margin":             "123.32",
			"margin_rate":            "33.34",
		})
	})

	out := captureOutput(t, func() {
		showMargin("css-1", "2024-01-01", "2024-01-30")
	})

	if !strings.Contains(out, "CSS Nord") || !strings.Contains(out, "Net margin: 123.32") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}
