package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

func badRequest(msg string) *ErrorDetail {
	return &ErrorDetail{Code: "bad_request", Message: msg}
}

// Document is anything persisted through the document store.
type Document interface {
	DocumentID() string
}

type StatusResponse struct {
	Status string `json:"status"`
}
