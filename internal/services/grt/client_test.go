package grt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchBranches_Success(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"management_id":"ABC00001","management_id_level_number":5}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	branches, err := client.FetchBranches(context.Background())
	if err != nil {
		t.Fatalf("FetchBranches failed: %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("Expected bearer authorization header, got %q", gotAuth)
	}
	if len(branches) != 1 {
		t.Fatalf("Expected 1 branch, got %d", len(branches))
	}
	if code, _ := branches[0]["management_id"].(string); code != "ABC00001" {
		t.Errorf("Unexpected management_id: %v", branches[0]["management_id"])
	}
}

func TestFetchBranches_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"upstream exploded"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	branches, err := client.FetchBranches(context.Background())
	if err == nil {
		t.Fatal("Expected error on HTTP 500")
	}
	if branches != nil {
		t.Errorf("Expected no data on HTTP 500, got %v", branches)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "upstream exploded") {
		t.Errorf("Error should carry status and detail, got: %v", err)
	}
}

func TestFetchBranches_MissingConfiguration(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.FetchBranches(context.Background()); err == nil {
		t.Error("Expected error when API key is missing")
	}

	client = NewClient("", "secret-key")
	if _, err := client.FetchBranches(context.Background()); err == nil {
		t.Error("Expected error when API url is missing")
	}

	if calls != 0 {
		t.Errorf("Missing configuration must short-circuit before any network call, got %d calls", calls)
	}
}

func TestFetchBranches_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	if _, err := client.FetchBranches(context.Background()); err == nil {
		t.Error("Expected error on malformed JSON body")
	}
}
