// Package auth resolves who is calling from the request context.
package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/hirehunt/hirehunt/internal/app/models"
)

// Context keys populated by the authentication middleware
const (
	ContextKeyUserID = "userID"
	ContextKeyEmail  = "email"
	ContextKeyRole   = "role"
)

// Identity is the authenticated caller of a request
type Identity struct {
	UserID int64
	Email  string
	Role   models.Role
}

// IsAdmin reports whether the caller is an admin
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// HasRole reports whether the caller holds one of roles
func (i Identity) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}

// SetIdentity stores id on the gin context
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ContextKeyUserID, id.UserID)
	c.Set(ContextKeyEmail, id.Email)
	c.Set(ContextKeyRole, id.Role)
}

// FromContext returns the caller identity when the request was authenticated
func FromContext(c *gin.Context) (Identity, bool) {
	rawID, exists := c.Get(ContextKeyUserID)
	if !exists {
		return Identity{}, false
	}
	userID, ok := rawID.(int64)
	if !ok || userID <= 0 {
		return Identity{}, false
	}

	id := Identity{UserID: userID, Email: c.GetString(ContextKeyEmail)}
	if role, ok := c.Get(ContextKeyRole); ok {
		id.Role, _ = role.(models.Role)
	}
	return id, true
}
