package driven

import "net/url"

// Location is the address the search state is mirrored into, so the state
// can be shared and restored. Replace rewrites the query string in place
// without any navigation.
type Location interface {
	// Current returns the query parameters of the current location.
	Current() url.Values

	// Replace swaps the query parameters of the current location.
	Replace(values url.Values)

	// String renders the full shareable address.
	String() string
}
