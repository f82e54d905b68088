package middleware

import (
	"venue-boxoffice/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxGroupIDKey = "group_id"

// RequireGroupID parses the :id path parameter as a booking group id.
func RequireGroupID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.BadRequest(c, err, "Invalid id")
			return
		}
		c.Set(ctxGroupIDKey, id)
	}
}

func GetGroupID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxGroupIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
