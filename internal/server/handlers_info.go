package server

import (
	"net/http"

	"devops/info/internal/info"
)

// handleInfo godoc
// @Title Service information
// @Description Returns service identity, host facts, uptime and metadata about the calling request.
// @Resource System
// @Produce json
// @Success 200 {object} info.InfoResponse
// @Route / [get]
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	s.log.Info().Msg("Handling main endpoint request")

	payload := s.info.AssembleInfoResponse(info.RequestContext{
		ClientIP:  clientIP(r),
		UserAgent: optionalHeader(r, "User-Agent"),
		Method:    r.Method,
		Path:      r.URL.Path,
	})
	s.writeJSON(w, http.StatusOK, payload)
}
