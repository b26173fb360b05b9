package discogs

import (
	"errors"
	"net/url"
	"regexp"
)

// ErrInvalidSellerURL is returned when no seller segment can be found
// in the input URL.
//
// This is a usage error, not a runtime condition: callers should stop
// before any network activity when they see it.
var ErrInvalidSellerURL = errors.New("invalid Discogs seller URL")

// sellerPattern matches the /seller/<username>/ segment of a seller
// profile URL, e.g. https://www.discogs.com/seller/woodstockmusicshop/profile.
var sellerPattern = regexp.MustCompile(`/seller/([^/]+)/`)

// ParseSellerURL extracts the seller username and the query parameters
// from a seller profile URL.
//
// The query parameters are returned so callers can honor embedded
// filters like genre=Electronic.
//
// Returns ErrInvalidSellerURL when the URL has no seller segment.
//
// Example:
//
//	username, params, err := discogs.ParseSellerURL(
//	    "https://www.discogs.com/seller/woodstockmusicshop/profile?genre=Jazz")
//	// username = "woodstockmusicshop", params.Get("genre") = "Jazz"
func ParseSellerURL(rawURL string) (string, url.Values, error) {
	match := sellerPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return "", nil, ErrInvalidSellerURL
	}
	username := match[1]

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, ErrInvalidSellerURL
	}

	return username, parsed.Query(), nil
}
