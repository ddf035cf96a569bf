package handlers

import (
	"showcase-portal-backend/internal/auth"
	"showcase-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// asUser authenticates every request as the given user
func asUser(id uuid.UUID, username string, sysadmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id.String())
		c.Set("username", username)
		c.Set("auth_claims", &auth.AuthClaims{UserID: id.String(), Username: username, Sysadmin: sysadmin})
		c.Next()
	}
}

// actorMatcher matches a service.Actor by user id
type actorMatcher struct {
	id *uuid.UUID
}

func (m actorMatcher) Matches(x any) bool {
	actor, ok := x.(service.Actor)
	if !ok {
		return false
	}
	if m.id == nil {
		return !actor.IsLoggedIn()
	}
	return actor.UserID != nil && *actor.UserID == *m.id
}

func (m actorMatcher) String() string {
	if m.id == nil {
		return "is anonymous actor"
	}
	return "is actor " + m.id.String()
}

func actorWithID(id uuid.UUID) gomock.Matcher { return actorMatcher{id: &id} }

func anonymousActor() gomock.Matcher { return actorMatcher{} }
