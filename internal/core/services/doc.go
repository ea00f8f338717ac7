// Package services implements the driving port interfaces.
// Services contain the client-side logic (debounced search, pagination,
// location mirroring, landing aggregation) and call out to driven ports.
//
// Services are pure Go with no UI or transport dependencies.
package services
