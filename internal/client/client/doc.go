// Package client talks to the Jobly REST backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): login and
//     registration returning a credential, user fetch/update, company and job
//     listings, and job applications.
//  2. An HTTP implementation (see HTTPClient) built on a single generic
//     request primitive. Every call carries "Authorization: Bearer <token>"
//     (the token may be empty) and an X-Request-ID. For GET requests the
//     payload is flattened into query parameters, for other verbs it is sent
//     as a JSON body.
//
// # Error Handling
//
// Every non-2xx response and every transport failure is returned as an
// *APIError whose Messages come from the backend envelope
//
//	{"error": {"message": "text" | ["text", ...], "status": 400}}
//
// A single message is wrapped in a one-element list. APIError unwraps to a
// sentinel that callers can match with errors.Is: ErrUnavailable,
// ErrUnauthorized, ErrNotFound or ErrRequestFailed.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation; no request is retried.
package client
