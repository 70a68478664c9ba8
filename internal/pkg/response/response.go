package response

import "github.com/gin-gonic/gin"

// OK writes {success:true} merged with extra.
func OK(c *gin.Context, statusCode int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Data writes {success:true, data}.
func Data(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes {success:false, error}.
func Error(c *gin.Context, statusCode int, err string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   err,
	})
}

// Message writes {success:false, message}. The submit endpoint uses this
// shape for malformed bodies and storage failures.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}

// AbortError is Error for middleware.
func AbortError(c *gin.Context, statusCode int, err string) {
	Error(c, statusCode, err)
	c.Abort()
}
