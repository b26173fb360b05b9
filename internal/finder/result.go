package finder

import (
	"fmt"
	"strings"

	"github.com/benthev/vinylfinder/internal/model"
)

// Result is the verdict for one listing that survived the format and
// genre gates.
type Result struct {
	// Index is the 1-based sequence number among checked listings.
	Index int

	// Listing is the inventory entry the verdict is about.
	Listing model.Listing

	// VinylOnly reports whether the listing passed the sibling-purity
	// check.
	VinylOnly bool

	// Status is the human-readable verdict, e.g.
	// "✓ VINYL-ONLY (no master release)" or "✗ has non-vinyl (12 versions)".
	Status string

	// Genres is the effective genre list shown for the item: the
	// master's genres when a master resolved, else the release's own.
	// Nil means a master exists but could not be fetched.
	Genres []string

	// VersionCount is the number of sibling versions inspected. Zero
	// when the release has no master.
	VersionCount int
}

// Line renders the one-line verdict in the report format:
//
//	[3] ✓ VINYL-ONLY (12 versions, vinyl/cassette only) | Electronic | Artist - Title | $25 USD | https://www.discogs.com/release/249504
func (r Result) Line() string {
	genres := "Unknown"
	if r.Genres != nil {
		genres = strings.Join(r.Genres, ", ")
	}
	return fmt.Sprintf("[%d] %s | %s | %s - %s | $%s | %s",
		r.Index, r.Status, genres,
		r.Listing.Artist, r.Listing.Title,
		r.Listing.Price, model.ReleaseURL(r.Listing.ReleaseID))
}

// Summary holds the running totals of a scan.
type Summary struct {
	// Fetched counts every listing seen in the inventory.
	Fetched int

	// Checked counts listings that passed the format and genre gates
	// and were classified.
	Checked int

	// VinylOnly counts listings classified as format-pure.
	VinylOnly int
}

// String renders the final totals line.
func (s Summary) String() string {
	return fmt.Sprintf("Total: %d fetched, %d matched genre filter, %d vinyl-only",
		s.Fetched, s.Checked, s.VinylOnly)
}
