package handler

const oopsErr = "failed to encode the response"

// Response is the body of every failed request.
type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Error   string `json:"error,omitempty"`
}
