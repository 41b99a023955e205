package handlers

import (
	"net/http"
	"strconv"

	"healthmate-backend/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID reads the user ID the auth middleware resolved. Handlers
// behind the middleware can rely on it being present.
func currentUserID(c *gin.Context) uuid.UUID {
	v, _ := c.Get(auth.ContextUserID)
	id, _ := v.(uuid.UUID)
	return id
}

// queryLimit parses the optional ?limit= parameter. Zero means "use the
// default"; a second return of false means the value was malformed and a 400
// has already been written.
func queryLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, false
	}
	return limit, true
}
