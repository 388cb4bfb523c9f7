package values

// Response statuses. Handlers return these and util.StatusCode maps
// them to HTTP codes.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	SystemErr      = "system-error"
	BadRequestBody = "bad-request"
	Unprocessable  = "unprocessable"
	NotAllowed     = "not-allowed"
	NotImplemented = "not-implemented"
	Conflict       = "conflict"
	NotFound       = "not-found"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	ActiveLogin    = "active-login"
)

const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

// ContextTracingKey holds the tracing.Context attached by the
// RequestTracing middleware.
const ContextTracingKey = contextKey("tracing-context")

// Report statuses as exposed over the API.
const (
	ReportStatusPending   = "pending"
	ReportStatusReviewing = "reviewing"
	ReportStatusResolved  = "resolved"
	ReportStatusClosed    = "closed"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
	RoleViewer   = "viewer"
)

// ValidReportStatuses lists the accepted report statuses in the order
// they appear in error messages.
var ValidReportStatuses = []string{ReportStatusPending, ReportStatusReviewing, ReportStatusResolved, ReportStatusClosed}

// ValidRoles lists the accepted user roles.
var ValidRoles = []string{RoleAdmin, RoleReviewer, RoleViewer}

// IsValidReportStatus reports whether s is one of the four accepted statuses.
func IsValidReportStatus(s string) bool {
	for _, v := range ValidReportStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsValidRole reports whether r is one of the accepted roles.
func IsValidRole(r string) bool {
	for _, v := range ValidRoles {
		if r == v {
			return true
		}
	}
	return false
}
