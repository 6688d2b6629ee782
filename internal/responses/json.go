package responses

import "github.com/gin-gonic/gin"

// Error writes the contract's error shape. Success payloads are raw
// top-level values, so handlers emit those with c.JSON directly.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// ErrorFrom writes the error shape from a Go error.
func ErrorFrom(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, gin.H{"error": err.Error()})
}
