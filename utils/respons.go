package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// RespondData wraps the payload under a "data" key.
func RespondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, DataResponse{Data: data})
}

// RespondError surfaces an APIError with its own status code; anything else
// becomes an opaque 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, ErrorResponse{Status: apiErr.Status, Message: apiErr.Message})
		return
	}
	if ErrorLogger != nil {
		ErrorLogger.Printf("Internal error: %v", err)
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
