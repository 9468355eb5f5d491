package dto

// APIResponse is the uniform success envelope.
type APIResponse struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// SuccessResponse carries a bare confirmation message.
type SuccessResponse struct {
	Message string `json:"message"`
}
