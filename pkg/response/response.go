package response

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body of every API reply. Exactly one of Data or Error is set.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// ErrorInfo carries a machine code and a message the form can show as is.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta is attached to list replies.
type Meta struct {
	Total int `json:"total"`
}

func success(c *gin.Context, status int, data interface{}, meta *Meta) {
	c.JSON(status, Envelope{Success: true, Data: data, Meta: meta})
}

func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data, nil)
}

// OKWithMeta replies 200 with a list and its total.
func OKWithMeta(c *gin.Context, data interface{}, meta *Meta) {
	success(c, http.StatusOK, data, meta)
}

func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data, nil)
}

// Attachment writes data as a download named filename, outside the envelope.
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, contentType, data)
}

// Message replies 200 with {"message": message} as data.
func Message(c *gin.Context, message string) {
	success(c, http.StatusOK, gin.H{"message": message}, nil)
}

// errorResponse aborts the chain so later middleware and handlers do not run.
func errorResponse(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "unauthorized"
	}
	errorResponse(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, "NOT_FOUND", message)
}

// InternalError replies 500. Callers log the cause and pass a generic message.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	errorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

func Conflict(c *gin.Context, message string) {
	errorResponse(c, http.StatusConflict, "CONFLICT", message)
}

func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many applications from this address, try again later"
	}
	errorResponse(c, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", message)
}

// ValidationError replies 422 with a single message.
func ValidationError(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", message)
}

// ValidationErrorWithFields replies 422 and lists the failing json fields under data.fields.
func ValidationErrorWithFields(c *gin.Context, message string, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Data:    gin.H{"fields": fields},
		Error: &ErrorInfo{
			Code:    "VALIDATION_ERROR",
			Message: message,
		},
	})
}
