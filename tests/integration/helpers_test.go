package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"
)

// baseURL returns the base URL for a stub running on the given port.
func baseURL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// skipIfNotRunning performs a quick health check against a stub.
// If the stub is unreachable, the test is skipped (not failed).
func skipIfNotRunning(t *testing.T, port int) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL(port) + "/health/live")
	if err != nil {
		t.Skipf("stub on port %d not reachable: %v", port, err)
	}
	resp.Body.Close()
}

// doJSON performs an HTTP request with an optional JSON body and returns
// the status code, the raw response body, and the response headers.
func doJSON(t *testing.T, method, url string, body interface{}) (int, []byte, http.Header) {
	t.Helper()
	var bodyReader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshalling request body failed: %v", err)
		}
		bodyReader = bytes.NewReader(jsonBytes)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("creating %s request for %s failed: %v", method, url, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading response body failed: %v", err)
	}
	return resp.StatusCode, raw, resp.Header
}

// decodeObject decodes a JSON object response body.
func decodeObject(t *testing.T, raw []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("expected JSON object, got %q: %v", raw, err)
	}
	return result
}

// decodeList decodes a JSON array response body.
func decodeList(t *testing.T, raw []byte) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("expected JSON array, got %q: %v", raw, err)
	}
	return result
}

// requireStatus asserts that the HTTP status code matches the expected value.
func requireStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d", want, got)
	}
}

// fieldString extracts a string field from a decoded object.
func fieldString(t *testing.T, data map[string]interface{}, key string) string {
	t.Helper()
	val, ok := data[key].(string)
	if !ok {
		t.Fatalf("expected string at %q, got %T: %v", key, data[key], data[key])
	}
	return val
}
