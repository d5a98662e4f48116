package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the access_token cookie.
type SessionClaims struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}
