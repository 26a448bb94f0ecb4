package middleware

// Gin context keys set by this package.
const (
	ContextKeyRequestID = "request_id"
	ContextKeyLogger    = "logger"
	ContextKeySessionID = "session_id"
)
