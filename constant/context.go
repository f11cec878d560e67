package constant

type ContextKey string

// SessionKey carries the authenticated session (user identity plus the
// store-api bearer token) through a request context.
const SessionKey ContextKey = "session"
