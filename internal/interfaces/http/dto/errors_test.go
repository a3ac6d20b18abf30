package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeAlreadyExists, http.StatusBadRequest},
		{ErrCodeConflict, http.StatusBadRequest},
		{ErrCodeInUse, http.StatusBadRequest},
		{"INVALID_BARCODE", http.StatusBadRequest},
		{"INVALID_PHONE", http.StatusBadRequest},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeRenderFailed, http.StatusInternalServerError},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestIsKnownCode(t *testing.T) {
	assert.True(t, IsKnownCode(ErrCodeRenderFailed))
	assert.True(t, IsKnownCode("INVALID_DATE"))
	assert.False(t, IsKnownCode("OPTIMISTIC_LOCK_FAILED"))
}

func TestNewValidationErrorResponse(t *testing.T) {
	ve := &shared.ValidationError{Messages: []string{"Full Name is required", "Job Type is required"}}

	body, err := json.Marshal(NewValidationErrorResponse(ve, "req-1"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "Full Name is required, Job Type is required", decoded["error"])
	assert.Equal(t, ErrCodeValidation, decoded["code"])
	assert.Equal(t, "req-1", decoded["request_id"])
	assert.Len(t, decoded["details"], 2)
}

func TestNewErrorResponse_OmitsEmptyFields(t *testing.T) {
	body, err := json.Marshal(NewErrorResponse("", "Product not found", ""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"Product not found"}`, string(body))
}

func TestListRequest_Filter(t *testing.T) {
	f := ListRequest{}.Filter()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.PageSize)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.Equal(t, "desc", f.OrderDir)

	f = ListRequest{Page: 3, PageSize: 10, OrderBy: "date", OrderDir: "asc", Search: "olci"}.Filter()
	assert.Equal(t, 20, f.Offset())
	assert.Equal(t, "date", f.OrderBy)
	assert.Equal(t, "asc", f.OrderDir)
	assert.Equal(t, "olci", f.Search)
	assert.NotNil(t, f.Filters)
}
