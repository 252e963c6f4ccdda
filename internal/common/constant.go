package common

// CredentialKey is the single persistent-store key holding the session credential.
const CredentialKey = "joblyToken"

const (
	// AuthorizationHeaderName carries "Bearer <credential>" on every API call.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates client log lines with backend requests.
	RequestIDHeaderName = "X-Request-ID"
)
