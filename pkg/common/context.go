package common

type contextKey string

const (
	// UserContextKey holds the authenticated *user.User for the request.
	UserContextKey contextKey = "authenticated_user"
)
