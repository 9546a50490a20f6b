// Package response provides the JSON response shapes of the audio storage API.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON body returned by upload and error paths.
type Response struct {
	Message  string `json:"message,omitempty"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Uploaded sends a 200 response naming the stored object.
func Uploaded(c *gin.Context, filename string) {
	c.JSON(http.StatusOK, Response{
		Message:  "Upload successful",
		Filename: filename,
	})
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Error: message})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 error response.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}
