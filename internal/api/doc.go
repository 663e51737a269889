// Package api fetches tajweed markup from the quran.com v4 REST API.
//
// One request retrieves one verse:
//
//	GET https://api.quran.com/api/v4/quran/verses/uthmani_tajweed?verse_key=2:255
//
// The response carries a "verses" array; only the first element's
// text_uthmani_tajweed field is consumed.
//
// # Errors
//
// Failures fall into three kinds, reported by Kind:
//
//   - KindTransport: connection errors and timeouts
//   - KindHTTP: non-2xx responses (*StatusError)
//   - KindFormat: invalid JSON or a missing field (ErrMissingField)
//
// The client performs no retries and no authentication.
package api
