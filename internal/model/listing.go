package model

import (
	"strconv"
	"strings"
)

// Listing represents one entry in a seller's for-sale inventory.
//
// A Listing is a lightweight reference to a Release: it carries the
// identifier needed to fetch the full catalog record plus the display
// fields the seller's inventory page already provides (title, artist,
// price, condition). Listings are created from one page of inventory
// results and discarded after classification.
//
// Example:
//
//	for listing := range client.SellerInventory(ctx, "woodstockmusicshop") {
//	    fmt.Printf("%s - %s (%s)\n", listing.Artist, listing.Title, listing.Price)
//	}
type Listing struct {
	// ReleaseID identifies the catalog release this listing is selling.
	ReleaseID int64

	// Title is the seller's display title for the item.
	Title string

	// Artist is the display artist name.
	Artist string

	// Price is the asking price.
	Price Price

	// Condition is the seller's media condition grading (e.g. "Near Mint (NM or M-)").
	Condition string

	// Format is the raw format string from the inventory listing
	// (e.g. `LP, Album, RE`). The classification pipeline does not use
	// this field; the authoritative format data lives on the Release.
	Format string
}

// Price is an asking price with its currency code.
type Price struct {
	Value    float64
	Currency string
}

// String renders the price as "12.5 USD". A zero price with no currency
// renders as the empty string, matching inventory entries that omit it.
func (p Price) String() string {
	if p.Value == 0 && p.Currency == "" {
		return ""
	}
	value := strconv.FormatFloat(p.Value, 'f', -1, 64)
	return strings.TrimSpace(value + " " + p.Currency)
}
