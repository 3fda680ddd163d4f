// Package client talks to the Unsaid server and opens the local cache.
//
// GRPCClient wraps the unsaid.v1.Diary service: it attaches the access
// token to every call, refreshes the token pair once when the server
// answers "token expired" and maps status codes to the sentinel errors
// below so callers can match them with errors.Is.
//
// InitDatabase opens the SQLite cache and applies the embedded goose
// migrations.
package client
