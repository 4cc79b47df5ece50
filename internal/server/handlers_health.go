package server

import (
	"net/http"
)

// handleHealth godoc
// @Title Health check
// @Description Returns liveness status, the current UTC time and uptime in seconds.
// @Resource System
// @Produce json
// @Success 200 {object} info.HealthResponse
// @Route /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.info.AssembleHealthResponse())
}
