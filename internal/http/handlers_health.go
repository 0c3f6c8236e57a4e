package httpx

import "net/http"

// Healthz handles GET /healthz. Liveness only; it makes no backend calls.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
