//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type ConfigurationListResponse struct {
	Configurations []string `json:"configurations"`
}

func TestListConfigurations(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/configurations", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}

	var list ConfigurationListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(list.Configurations) == 0 {
		t.Error("Expected at least one configuration on staging")
	}
}

func TestListJobs(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/jobs", nil)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestUnknownJobReturnsNotFound(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/jobs/no-such-job", nil)

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}

func TestPreviewRejectsEmptyRequest(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/imports/preview", map[string]string{})

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}
}

func TestRejectsMissingAPIKey(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/configurations", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
