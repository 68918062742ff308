// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// DataResponse wraps a successful payload.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// BulkDeleteRequest represents the request body for bulk deletions.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}

// BulkDeleteResponse represents the result of a bulk deletion.
type BulkDeleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// PeriodQuery holds the optional dd-MM-yyyy bounds and account filter shared by
// the summary and transaction list endpoints.
type PeriodQuery struct {
	From      string `form:"from" binding:"omitempty,ddmmyyyy"`
	To        string `form:"to" binding:"omitempty,ddmmyyyy"`
	AccountID string `form:"accountId" binding:"omitempty,uuid"`
}
