package server

// APIError is the body of every non-2xx response.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
