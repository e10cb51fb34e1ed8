// Package authsdk is the client SDK for the Pennywise authentication
// service. It wraps the HTTP API with request construction, bounded retries
// for network failures, durable credential persistence and a Session type
// that front ends can bootstrap from on startup.
//
// The request/response and error types in this package are shared with the
// server handlers, so the wire contract is defined in exactly one place.
package authsdk
