// Package discogs provides a typed client for the Discogs catalog API.
//
// The package covers the three resource families the finder needs:
//
//  1. Seller inventory (paginated, walked lazily)
//  2. Single releases and masters by identifier
//  3. A master's version list (paginated, collected fully)
//
// # Seller URLs
//
// ParseSellerURL turns a seller profile URL into the username and
// embedded filter parameters:
//
//	username, params, err := discogs.ParseSellerURL(rawURL)
//	if errors.Is(err, discogs.ErrInvalidSellerURL) {
//	    // usage error: stop before any network activity
//	}
//
// # Pagination
//
// Collection resources are walked with an internal generic
// page-follower that yields one flattened sequence across pages.
// Missing pagination metadata terminates a walk safely after the first
// page, and a failed page fetch ends the walk silently after logging.
//
// # Wire format
//
// The dto subpackage mirrors the API's JSON envelopes and converts them
// to the model types; nothing outside this package sees raw JSON.
package discogs
