package tracing

// Context carries the per-request identifiers the middleware extracts
// from (or assigns to) incoming requests. It travels with the request
// context and is attached to error logs.
type Context struct {
	RequestID     string `json:"request_id"`
	RequestSource string `json:"request_source"`
}
