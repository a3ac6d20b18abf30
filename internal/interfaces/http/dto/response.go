package dto

import (
	"strconv"

	"github.com/orgalaser/invoicing/internal/domain/shared"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code,omitempty"`
	Details   []string `json:"details,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestID,
	}
}

// NewValidationErrorResponse reports every failed rule. The top-level error
// joins the messages the way clients have always displayed them.
func NewValidationErrorResponse(err *shared.ValidationError, requestID string) ErrorResponse {
	return ErrorResponse{
		Error:     err.Error(),
		Code:      ErrCodeValidation,
		Details:   err.Messages,
		RequestID: requestID,
	}
}

// MessageResponse carries a confirmation such as a delete acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// TotalCountHeader carries the unpaged row count of list responses
const TotalCountHeader = "X-Total-Count"

// ListRequest represents common list/pagination query parameters.
// Omitting page_size returns every row.
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=500"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc ASC DESC"`
	Search   string `form:"search"`
}

// Filter converts the request into a repository filter
func (r ListRequest) Filter() shared.Filter {
	f := shared.DefaultFilter()
	if r.Page > 0 {
		f.Page = r.Page
	}
	f.PageSize = r.PageSize
	if r.OrderBy != "" {
		f.OrderBy = r.OrderBy
	}
	if r.OrderDir != "" {
		f.OrderDir = r.OrderDir
	}
	f.Search = r.Search
	return f
}

// FormatTotal renders a count for TotalCountHeader
func FormatTotal(total int64) string {
	return strconv.FormatInt(total, 10)
}
