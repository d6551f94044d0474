package api

import (
	"net/http"
)

// handleHealth reports overall service health. The daemon connection is
// judged by the chain monitor's latest poll.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status": "ok",
		"services": map[string]string{
			"daemon": "unknown",
			"cache":  "up",
		},
	}

	if s.monitor != nil {
		if s.monitor.Healthy() {
			status["services"].(map[string]string)["daemon"] = "up"
		} else {
			status["services"].(map[string]string)["daemon"] = "down"
		}
	}

	s.sendJSONResponse(w, status)
}
