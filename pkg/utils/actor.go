package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Actor is the authenticated caller, passed explicitly into services.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CurrentActor reads the identity placed on the context by JWTAuthMiddleware.
func CurrentActor(c *gin.Context) (Actor, bool) {
	id, err := uuid.Parse(c.GetString(ContextUserID))
	if err != nil {
		return Actor{}, false
	}
	return Actor{UserID: id, Role: c.GetString(ContextRole)}, true
}
