package models

// Response is the uniform success envelope of the API:
// {"success": true, "data": ...}.
type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorResponse is the uniform failure envelope of the API:
// {"success": false, "message": "..."}. Every rejection emitted by the
// authentication middleware uses this shape.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail builds a failure envelope with the given user-facing message.
func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
