package finder

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/benthev/vinylfinder/internal/discogs"
	"github.com/benthev/vinylfinder/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
)

// ProgressEvent is a side-channel diagnostic emitted during a scan.
// Events belong on the error stream; verdict lines flow through the
// result callback instead.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Scanner runs the classification pipeline over a seller's inventory.
//
// Items are processed strictly one at a time; each may issue several
// serial rate-limited fetches (release, master, version pages), which
// makes network latency the dominant cost of a scan. Per-item failures
// degrade to skips so a run always completes to a summary.
//
// Example usage:
//
//	scanner := finder.NewScanner(client, "Electronic",
//	    func(e finder.ProgressEvent) { fmt.Fprintln(os.Stderr, e.Message) },
//	    func(r finder.Result) { fmt.Println(r.Line()) })
//
//	summary, err := scanner.Scan(ctx, sellerURL)
type Scanner struct {
	client *discogs.Client
	genre  string

	onProgress func(ProgressEvent)
	onResult   func(Result)

	// Counters are atomics only so a UI goroutine can read progress
	// while a scan runs; the scan itself is single-threaded.
	fetched   atomic.Int64
	checked   atomic.Int64
	vinylOnly atomic.Int64
}

// NewScanner creates a Scanner.
//
// genre is the filter applied during scans; empty disables genre
// filtering. A genre= query parameter embedded in the seller URL
// overrides it. Both callbacks may be nil.
func NewScanner(client *discogs.Client, genre string, onProgress func(ProgressEvent), onResult func(Result)) *Scanner {
	return &Scanner{
		client:     client,
		genre:      genre,
		onProgress: onProgress,
		onResult:   onResult,
	}
}

// Progress returns the running counters of the current scan.
func (s *Scanner) Progress() (fetched, checked, vinylOnly int) {
	return int(s.fetched.Load()), int(s.checked.Load()), int(s.vinylOnly.Load())
}

// Scan walks the seller's inventory and classifies every listing,
// emitting a Result per non-skipped item and returning the totals.
//
// The only fatal errors are a malformed seller URL (before any network
// activity) and a cancelled context; everything else is a per-item skip.
func (s *Scanner) Scan(ctx context.Context, sellerURL string) (Summary, error) {
	username, params, err := discogs.ParseSellerURL(sellerURL)
	if err != nil {
		return Summary{}, err
	}

	// A genre filter embedded in the URL wins over the configured one.
	genre := s.genre
	if urlGenre := params.Get("genre"); urlGenre != "" {
		genre = urlGenre
	}

	s.fetched.Store(0)
	s.checked.Store(0)
	s.vinylOnly.Store(0)

	s.progress(LevelInfo, "Fetching inventory for seller: %s", username)
	if genre != "" {
		s.progress(LevelInfo, "Genre filter: %s", genre)
	}
	s.progress(LevelInfo, "Format filter: Vinyl only")
	s.progress(LevelInfo, "Scanning inventory...")

	for listing := range s.client.SellerInventory(ctx, username) {
		if ctx.Err() != nil {
			return s.summary(), ctx.Err()
		}
		s.fetched.Add(1)

		result, skip := s.classify(ctx, listing, genre)
		if skip {
			continue
		}

		if result.VinylOnly {
			s.vinylOnly.Add(1)
		}
		if s.onResult != nil {
			s.onResult(result)
		}
	}

	if err := ctx.Err(); err != nil {
		return s.summary(), err
	}
	return s.summary(), nil
}

// classify pushes one listing through the resolution chain and the
// format, genre and sibling-purity gates. skip is true when the item
// falls out before a verdict.
func (s *Scanner) classify(ctx context.Context, listing model.Listing, genre string) (Result, bool) {
	release, master, err := s.resolve(ctx, listing.ReleaseID)
	if err != nil {
		s.progress(LevelWarning, "Skipping %q: %v", listing.Title, err)
		return Result{}, true
	}

	// Format gate: items without a vinyl pressing are out of scope.
	if !release.HasFormat("Vinyl") {
		s.progress(LevelVerbose, "Not vinyl: %s - %s", listing.Artist, listing.Title)
		return Result{}, true
	}

	// Genre gate: master genres when available, else the release's own.
	if genre != "" {
		genres := release.Genres
		if master != nil {
			genres = master.Genres
		}
		if !model.ContainsFold(genres, genre) {
			s.progress(LevelVerbose, "Genre mismatch: %s - %s", listing.Artist, listing.Title)
			return Result{}, true
		}
	}

	checked := int(s.checked.Add(1))

	result := Result{
		Index:   checked,
		Listing: listing,
	}

	if !release.HasMaster() {
		// No master means no sibling pressings exist to contaminate
		// the verdict.
		result.VinylOnly = true
		result.Status = "✓ VINYL-ONLY (no master release)"
		result.Genres = nonNil(release.Genres)
		return result, false
	}

	versions := s.client.MasterVersions(ctx, release.MasterID)
	result.VersionCount = len(versions)
	if master != nil {
		result.Genres = nonNil(master.Genres)
	}

	if model.HasNonVinylVersion(versions) {
		result.Status = fmt.Sprintf("✗ has non-vinyl (%d versions)", len(versions))
		return result, false
	}

	result.VinylOnly = true
	result.Status = fmt.Sprintf("✓ VINYL-ONLY (%d versions, vinyl/cassette only)", len(versions))
	return result, false
}

// resolve fetches the release record and, when one exists, its master.
// A failed release fetch aborts the item; a failed master fetch is
// best-effort and yields a nil master.
func (s *Scanner) resolve(ctx context.Context, releaseID int64) (*model.Release, *model.Master, error) {
	release, err := s.client.Release(ctx, releaseID)
	if err != nil {
		return nil, nil, err
	}

	var master *model.Master
	if release.HasMaster() {
		master, err = s.client.Master(ctx, release.MasterID)
		if err != nil {
			s.progress(LevelVerbose, "Master %d unavailable, falling back to release genres: %v",
				release.MasterID, err)
			master = nil
		}
	}
	return release, master, nil
}

func (s *Scanner) summary() Summary {
	fetched, checked, vinylOnly := s.Progress()
	return Summary{Fetched: fetched, Checked: checked, VinylOnly: vinylOnly}
}

func (s *Scanner) progress(level ProgressLevel, format string, args ...any) {
	if s.onProgress == nil {
		return
	}
	s.onProgress(ProgressEvent{
		Message: fmt.Sprintf(format, args...),
		Level:   level,
	})
}

// nonNil keeps the distinction between "no genres" (empty) and
// "genres unknown" (nil) out of Result consumers.
func nonNil(genres []string) []string {
	if genres == nil {
		return []string{}
	}
	return genres
}
