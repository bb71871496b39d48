// Package common contains shared constants, sentinel errors and error kinds
// used by both the authentication backend and the gateway.
package common

// RequestIDHeaderName is the HTTP header and gRPC metadata key used to carry
// the request id across the service boundary.
const RequestIDHeaderName = "x-request-id"

// AuthorizationHeaderName carries the bearer session token on inbound HTTP
// requests.
const AuthorizationHeaderName = "Authorization"
