package errors

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Detail  string `json:"detail"`            // Spanish, operator-facing message
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Optional diagnostic information
}

// NewErrorResponse renders an AppError into its response body.
func NewErrorResponse(err AppError) ErrorResponse {
	return ErrorResponse{
		Detail:  err.Message(),
		Code:    err.ErrorCode(),
		Details: err.Details(),
	}
}
