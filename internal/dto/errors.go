package dto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}
