// Package tokens keeps the client's API credentials: an access token, a
// refresh token and the absolute time the access token expires.
//
// The three values form one record. A Store only ever replaces the whole
// record or removes it, so readers never see a mix of old and new values,
// and the persisted form never holds a partial record.
//
// Persistence is delegated to a Backend. MemoryBackend is used in tests and
// for throwaway sessions; SQLiteBackend keeps the record in the local
// database's metadata table, optionally sealed with a passphrase-derived key.
//
// Persisted layout, three string values:
//
//	access_token   the bearer token
//	refresh_token  the refresh token
//	expires_at     absolute expiry, Unix milliseconds in decimal
package tokens
