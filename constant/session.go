package constant

import "time"

type contextKey string

// ClaimsKey holds the decoded session claims on an authenticated request.
const ClaimsKey contextKey = "session_claims"

const (
	AccessTokenCookie = "access_token"
	SessionLifetime   = 30 * 24 * time.Hour
	RevokedTokenKey   = "revoked:"
)
