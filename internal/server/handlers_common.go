package server

import (
	"encoding/json"
	"net"
	"net/http"
)

const (
	errNotFound         = "Not Found"
	msgNotFound         = "Endpoint does not exist"
	errMethodNotAllowed = "Method Not Allowed"
	msgMethodNotAllowed = "Method is not allowed for this endpoint"
	errInternal         = "Internal Server Error"
	msgInternal         = "An unexpected error occurred"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.log.Warn().Err(err).Msg("write json response")
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, APIError{Error: code, Message: message})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, errNotFound, msgNotFound)
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusMethodNotAllowed, errMethodNotAllowed, msgMethodNotAllowed)
}

// clientIP strips the port from RemoteAddr. After middleware.RealIP the
// address may already be a bare IP.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func optionalHeader(r *http.Request, key string) *string {
	values := r.Header.Values(key)
	if len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}
