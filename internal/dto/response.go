package dto

// DataResponse wraps every successful payload.
type DataResponse struct {
	Data any `json:"data"`
}

// SuccessResponse answers mutations without a payload.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ErrorResponse answers every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// BulkErrorResponse is a failed bulk batch with its per-id outcome.
type BulkErrorResponse struct {
	Error string       `json:"error"`
	Data  BulkResponse `json:"data"`
}
