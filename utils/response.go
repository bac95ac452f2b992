package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Response is the standard envelope of every API response
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError is a single per-field validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SendSuccess sends a success response
func SendSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendError sends an error response with a single message
func SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// SendValidationErrors sends a 400 listing every failing field
func SendValidationErrors(c *gin.Context, fieldErrors []FieldError) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation errors",
		Errors:  fieldErrors,
	})
}

// SendDBError maps a persistence error to an HTTP status by kind.
// Not-found surfaces as 404; everything else is a 500 whose detail stays
// server-side in release mode.
func SendDBError(c *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		SendError(c, http.StatusNotFound, notFoundMessage)
		return
	}

	LogError(err, "Database operation failed")
	message := "Something went wrong"
	if gin.Mode() != gin.ReleaseMode {
		message = err.Error()
	}
	SendError(c, http.StatusInternalServerError, message)
}

// BindAndValidate binds the JSON body and short-circuits with the full list
// of field errors when any rule fails. No partial success: one failing field
// rejects the whole request.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		SendValidationErrors(c, FormatValidationErrors(err))
		return false
	}
	return true
}
