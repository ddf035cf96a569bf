package service

import (
	"github.com/google/uuid"
)

// Actor is the user on whose behalf an operation runs. The zero value is anonymous.
type Actor struct {
	UserID   *uuid.UUID
	Username string
	Sysadmin bool
}

// Anonymous returns an actor with no identity
func Anonymous() Actor {
	return Actor{}
}

// IsLoggedIn reports whether the actor carries an identity
func (a Actor) IsLoggedIn() bool {
	return a.UserID != nil && *a.UserID != uuid.Nil
}
