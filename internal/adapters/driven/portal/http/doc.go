// Package portalhttp implements the portal REST client.
//
// Requests are throttled client side, tagged with an X-Request-ID and
// decoded from the portal's JSON shapes into domain types. Non-2xx
// responses become *StatusError; 429 responses also match
// domain.ErrRateLimited.
package portalhttp
