package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Role names stored in the session. RoleAdmin is the elevated-privilege
// sentinel: only admins may create, edit, delete, or import products.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Actor is the authenticated principal attached to a request.
type Actor struct {
	ID   uuid.UUID
	Role string
}

// IsAdmin reports whether the actor holds elevated privileges.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const actorKey contextKey = "actor"

// ErrActorNotFound is returned when no Actor exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrActorNotFound = errors.New("actor not found in context")

// ActorFromCtx extracts the authenticated actor from the request context.
// Returns ErrActorNotFound if no actor is set (unauthenticated request).
// An absent actor must always be treated as holding no elevated privileges.
func ActorFromCtx(ctx context.Context) (Actor, error) {
	actor, ok := ctx.Value(actorKey).(Actor)
	if !ok || actor.ID == uuid.Nil {
		return Actor{}, ErrActorNotFound
	}
	return actor, nil
}

// WithActor returns a new context with the given actor attached.
// Used by authentication middleware after validating the session.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
