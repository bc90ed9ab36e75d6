package middleware

import (
	"net/http"
	"strings"
)

// RequireJSON enforces Content-Type: application/json on requests that carry
// a body. The backends being stubbed answer 400 with a one-element error
// array, so that exact body is reproduced here.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if !strings.Contains(strings.ToLower(ct), "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`[{"code":"INVALID_CONTENT_TYPE","message":"Content-Type must be application/json."}]`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
