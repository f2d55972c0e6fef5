// Package common contains constants and helpers shared by the client packages.
package common

const (
	// AccessTokenHeaderName carries the bearer token on authenticated requests.
	AccessTokenHeaderName = "x-access-token"

	// RequestIDHeaderName carries a per-request uuid for server-side correlation.
	RequestIDHeaderName = "X-Request-ID"
)
