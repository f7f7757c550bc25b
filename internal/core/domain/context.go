package domain

import "context"

type actorKey struct{}

// WithActor returns a context carrying the authenticated user. The admission
// middleware sets it; services read it for authorization and auditing.
func WithActor(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, actorKey{}, user)
}

// ActorFromContext returns the authenticated user, if any.
func ActorFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(actorKey{}).(*User)
	return user, ok && user != nil
}
