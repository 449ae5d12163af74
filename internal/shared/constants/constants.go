package constants

const (
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderXRequestID      = "X-Request-ID"
	HeaderRetryAfter      = "Retry-After"

	ContextKeyRequestID = "request_id"
	ContextKeyUsername  = "username"
	ContextKeyRole      = "role"

	// BasicAuthRealm is advertised in 401 challenges.
	BasicAuthRealm = "intake"

	RoleAdmin = "admin"

	ResourceIntake = "intake"

	ActionRead   = "read"
	ActionUpdate = "update"
	ActionStats  = "stats"

	TableIntakes = "intakes"
)
