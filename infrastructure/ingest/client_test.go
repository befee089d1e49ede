package ingest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"uploadlink/infrastructure/tracking"
)

func TestSubmit_SuccessUsesBackendMessage(t *testing.T) {
	t.Parallel()

	var gotFilename, gotContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("expected multipart field 'file': %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		gotFilename = header.Filename
		gotContent = string(content)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Received 3 rows"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{StocksUploadURL: server.URL})
	result := client.Submit(context.Background(), TargetStocks, "stocks-2025-03-05.csv", strings.NewReader("sku,qty\nA,1\n"))

	if !result.Succeeded {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Message != "Received 3 rows" {
		t.Fatalf("expected backend message, got %q", result.Message)
	}
	if gotFilename != "stocks-2025-03-05.csv" {
		t.Fatalf("expected filename to be forwarded, got %q", gotFilename)
	}
	if gotContent != "sku,qty\nA,1\n" {
		t.Fatalf("expected file content to be forwarded, got %q", gotContent)
	}
}

func TestSubmit_SuccessWithoutMessageFallsBackToGeneric(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{SalesUploadURL: server.URL})
	result := client.Submit(context.Background(), TargetSales, "sales.csv", strings.NewReader("x"))

	if !result.Succeeded {
		t.Fatalf("expected success, got %+v", result)
	}
	if result.Message != genericSuccessMessage {
		t.Fatalf("expected generic success message, got %q", result.Message)
	}
}

func TestSubmit_ServerErrorSurfacesBodyVerbatim(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("disk full"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{StocksUploadURL: server.URL})
	result := client.Submit(context.Background(), TargetStocks, "stocks.csv", strings.NewReader("x"))

	if result.Succeeded {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Message != "disk full" {
		t.Fatalf("expected verbatim error body, got %q", result.Message)
	}
}

func TestSubmit_TransportFailureYieldsGenericMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{StocksUploadURL: server.URL})
	result := client.Submit(context.Background(), TargetStocks, "stocks.csv", strings.NewReader("x"))

	if result.Succeeded {
		t.Fatalf("expected failure, got %+v", result)
	}
	if result.Message != genericFailureMessage {
		t.Fatalf("expected generic failure message, got %q", result.Message)
	}
}

func TestSubmit_UnknownTargetNeverPanics(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{})
	result := client.Submit(context.Background(), Target("inventory"), "x.csv", strings.NewReader("x"))
	if result.Succeeded {
		t.Fatalf("expected failure for unknown target")
	}
}

func TestFetchStatus_PassesPeriodAndReturnsPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("year") != "2025" || r.URL.Query().Get("month") != "03" {
			t.Errorf("unexpected period query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"uploadStatus":{"2025-03-05":true}}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{StatusURL: server.URL})
	payload, err := client.FetchStatus(context.Background(), tracking.Period{Year: 2025, Month: time.March})
	if err != nil {
		t.Fatalf("fetch status: %v", err)
	}
	if _, ok := payload["uploadStatus"]; !ok {
		t.Fatalf("expected raw payload to keep its wrapper, got %v", payload)
	}
}

func TestFetchStatus_NonOKIsAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{StatusURL: server.URL})
	if _, err := client.FetchStatus(context.Background(), tracking.Period{Year: 2025, Month: time.March}); err == nil {
		t.Fatalf("expected error for non-2xx status response")
	}
}

func TestFetchStatus_MalformedBodyIsAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{StatusURL: server.URL})
	if _, err := client.FetchStatus(context.Background(), tracking.Period{Year: 2025, Month: time.March}); err == nil {
		t.Fatalf("expected error for malformed status body")
	}
}

func TestParseTarget(t *testing.T) {
	t.Parallel()

	if _, err := ParseTarget("stocks"); err != nil {
		t.Fatalf("stocks: %v", err)
	}
	if _, err := ParseTarget("sales"); err != nil {
		t.Fatalf("sales: %v", err)
	}
	if _, err := ParseTarget("inventory"); err == nil {
		t.Fatalf("expected unknown target to be rejected")
	}
}
