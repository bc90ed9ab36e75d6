package integration

import (
	"net/http"
	"testing"
)

// TestHealthEndpoints verifies liveness and readiness for every stub.
func TestHealthEndpoints(t *testing.T) {
	for name, port := range map[string]int{
		"orders":    ordersPort,
		"catalog":   catalogPort,
		"carrier":   carrierPort,
		"warehouse": warehousePort,
	} {
		t.Run(name, func(t *testing.T) {
			skipIfNotRunning(t, port)

			status, raw, _ := doJSON(t, http.MethodGet, baseURL(port)+"/health/ready", nil)
			requireStatus(t, status, 200)
			if got := fieldString(t, decodeObject(t, raw), "status"); got != "up" {
				t.Fatalf("expected readiness status up, got %q", got)
			}
		})
	}
}
