package middleware

import "github.com/gin-gonic/gin"

// memberIDKey is the key used to store the authenticated member's ID in the
// request context. Using a custom type prevents collisions.
const memberIDKey = contextKey("memberID")

// GetMemberIDFromContext retrieves the authenticated member ID from the Gin
// context. It returns the member ID and a boolean indicating if it was found.
func GetMemberIDFromContext(c *gin.Context) (string, bool) {
	memberIDVal := c.Request.Context().Value(memberIDKey)
	if memberIDVal == nil {
		return "", false
	}

	memberID, ok := memberIDVal.(string)
	if !ok {
		// This should not happen if the auth middleware sets it correctly
		return "", false
	}

	return memberID, true
}
