package http

import "net/http"

// withSecureHeaders sets the baseline security response headers on every
// response. Cross-Origin-Resource-Policy is relaxed to "cross-origin" so
// the uploaded car images can be embedded by the frontends served from
// other origins.
func withSecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Cross-Origin-Resource-Policy", "cross-origin")

		next.ServeHTTP(w, r)
	})
}
