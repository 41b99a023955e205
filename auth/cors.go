package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware permitting all origins, methods and headers.
// The deployment serves a single first-party frontend; the open policy is
// intentional.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
