// Package client talks to the carlog REST API on behalf of the logged-in
// user.
//
// # Overview
//
// HTTPClient sends JSON requests with the current access token attached as a
// bearer token. When the server answers 401 to a request that carried a
// token, the client refreshes the credentials once and retries the request
// once with the new access token. The retry's outcome is final.
//
// Concurrent requests that fail together share a single refresh call: the
// first one performs it, the rest wait for its result, and all of them see
// the same new token or the same error. A request whose token was already
// replaced by a finished refresh simply retries with the current token.
//
// # Error Handling
//
// Every failure is returned to the caller; nothing is swallowed.
//
//   - ErrAuthFailure: the session cannot be recovered (no refresh token, or
//     the refresh call failed). The token store has been cleared; the caller
//     should send the user back to login.
//   - ErrUnavailable: the request never produced an HTTP response.
//   - *ServerError: any other non-2xx response, including a 401 to a request
//     sent without a token and a 401 to the retry.
//   - ErrProtocolMismatch: a 2xx response whose body is not JSON.
//
// All operations accept context.Context. The shared refresh call is detached
// from any single caller's cancellation, so one caller giving up does not
// fail the others.
package client
