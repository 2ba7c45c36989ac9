package utils

import "github.com/gin-gonic/gin"

// Error writes an error response body. The shape matches what the dashboard
// frontend and Tableau connector already consume: a single "detail" message.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"detail": message})
}
