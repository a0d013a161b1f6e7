package http

import "net/http"

// uploadsHandler serves the car image directory under /uploads with a
// permissive CORS header so the images embed from any frontend origin.
func uploadsHandler(dir string) http.Handler {
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		fileServer.ServeHTTP(w, r)
	})
}
