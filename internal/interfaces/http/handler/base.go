package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/orgalaser/invoicing/internal/domain/shared"
	"github.com/orgalaser/invoicing/internal/infrastructure/logger"
	"github.com/orgalaser/invoicing/internal/interfaces/http/dto"
	"github.com/orgalaser/invoicing/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

const genericErrorMessage = "An unexpected error occurred"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a 200 response with the body as is
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// ListResult sends a list with its unpaged total in the X-Total-Count header
func (h *BaseHandler) ListResult(c *gin.Context, data any, total int64) {
	c.Header(dto.TotalCountHeader, dto.FormatTotal(total))
	c.JSON(http.StatusOK, data)
}

// Message sends a confirmation message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// Attachment streams a file download
func (h *BaseHandler) Attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

// Error sends an error response with the given status
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// HandleError converts application errors to HTTP responses.
// Validation errors list every failed rule, domain errors map by code, and
// anything else is logged and reported with a generic message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID := middleware.GetRequestID(c)

	var ve *shared.ValidationError
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(ve, requestID))
		return
	}

	var de *shared.DomainError
	if errors.As(err, &de) && dto.IsKnownCode(de.Code) {
		status := dto.GetHTTPStatus(de.Code)
		if status >= http.StatusInternalServerError {
			h.logFailure(c, err)
		}
		c.AbortWithStatusJSON(status, dto.NewErrorResponse(de.Code, de.Message, requestID))
		return
	}

	h.logFailure(c, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, genericErrorMessage, requestID))
}

func (h *BaseHandler) logFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.FromContext(c.Request.Context()).Error("Request failed",
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
}

// BindJSON decodes the body into req and reports malformed bodies and
// binding rule failures. It returns false after writing the error response.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if msgs := middleware.ValidationMessages(err); msgs != nil {
		h.HandleError(c, &shared.ValidationError{Messages: msgs})
		return false
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
	case errors.Is(err, io.EOF):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body is required")
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, io.ErrUnexpectedEOF):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
	default:
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body: "+err.Error())
	}
	return false
}

// BindQuery binds query parameters, reporting rule failures as validation errors
func (h *BaseHandler) BindQuery(c *gin.Context, req any) bool {
	err := c.ShouldBindQuery(req)
	if err == nil {
		return true
	}
	if msgs := middleware.ValidationMessages(err); msgs != nil {
		h.HandleError(c, &shared.ValidationError{Messages: msgs})
		return false
	}
	h.BadRequest(c, "Invalid query parameters")
	return false
}

// ParamID parses the :id path parameter. Malformed ids cannot match a
// record, so they answer with notFound like an unknown id would.
func (h *BaseHandler) ParamID(c *gin.Context, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.HandleError(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}
