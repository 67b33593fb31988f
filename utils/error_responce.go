package utils

// ErrorResponse is the JSON body returned on request failures. Message is
// the human-readable part; Error carries the underlying cause when one exists.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
