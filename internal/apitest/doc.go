// Package apitest runs an in-memory carlog API on an httptest server.
//
// It implements the REST surface the client talks to (auth with rotating
// refresh tokens, cars, fuel, repairs, reminders, subscription checkout) and
// exposes knobs to revoke access tokens, fail refreshes, or answer with HTML,
// so client and CLI tests can drive every path end to end.
package apitest
